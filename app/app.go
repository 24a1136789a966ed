package app

import (
	"context"
	"net/http"

	"pokedex/config"
	"pokedex/database"
	"pokedex/handlers/pokemon"
	"pokedex/handlers/seed"
	"pokedex/realtime"
	"pokedex/repository"
	v2 "pokedex/routes/v2"
	"pokedex/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds the wired components of the API
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Cache    *database.Cache
	Hub      *realtime.Hub
	Pokemons *services.PokemonService
	Seed     *services.SeedService
	Log      *logrus.Logger
}

// New opens the database and the optional cache then builds the services
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, err
	}
	log.Info("connected to database")

	cache := database.NewCache(cfg)
	if cache != nil {
		if err := cache.Ping(ctx); err != nil {
			log.WithError(err).Warn("redis unreachable, pokeapi listing will not be cached")
		} else {
			log.WithField("addr", cfg.RedisAddr).Info("connected to redis")
		}
	}

	return Build(cfg, db, cache, log), nil
}

// Build wires the services on top of an opened database
func Build(cfg *config.Config, db *gorm.DB, cache *database.Cache, log *logrus.Logger) *App {
	hub := realtime.NewHub(log)
	pokemons := services.NewPokemonService(repository.NewGormPokemonRepository(db), cfg.DefaultLimit, hub, log)
	seedService := services.NewSeedService(services.SeedConfig{
		HTTP:     services.NewFetchAdapter(nil),
		Pokemons: pokemons,
		Cache:    cache,
		APIURL:   cfg.PokeAPIURL,
		Limit:    cfg.SeedLimit,
		Logger:   log,
	})

	return &App{
		Config:   cfg,
		DB:       db,
		Cache:    cache,
		Hub:      hub,
		Pokemons: pokemons,
		Seed:     seedService,
		Log:      log,
	}
}

// Router returns the gin engine serving the API
func (a *App) Router() *gin.Engine {
	gin.SetMode(a.Config.GinMode)
	return v2.NewRouter(v2.Dependencies{
		Config:   a.Config,
		Pokemons: pokemon.NewHandler(a.Pokemons, a.Hub, a.Log),
		Seed:     seed.NewHandler(a.Seed, a.Log),
		Logger:   a.Log,
	})
}

// Server returns an http.Server listening on the configured port
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:    a.Config.Addr(),
		Handler: a.Router(),
	}
}

// Close releases the cache and the database
func (a *App) Close() {
	if err := a.Cache.Close(); err != nil {
		a.Log.WithError(err).Warn("failed to close redis client")
	}
	if err := database.Close(a.DB); err != nil {
		a.Log.WithError(err).Warn("failed to close database")
	}
}
