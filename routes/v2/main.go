package v2

import (
	"pokedex/config"
	"pokedex/handlers/pokemon"
	"pokedex/handlers/seed"
	"pokedex/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

// Prefix is mounted in front of every API route
const Prefix = "/api/v2"

// Dependencies holds the handlers served by the v2 API
type Dependencies struct {
	Config   *config.Config
	Pokemons *pokemon.Handler
	Seed     *seed.Handler
	Logger   logrus.FieldLogger
}

// NewRouter builds the gin engine with the global middlewares, the v2 API
// and the static site
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware(deps.Logger))
	r.Use(cors.New(corsConfig(deps.Config.CORSOrigins)))

	Register(r, deps)
	RegisterStaticRoutes(r, deps.Config.PublicDir)
	return r
}

// ConfigureBinding sets gin's process-wide binding options so unknown JSON
// body fields are rejected. Call it once at startup, before serving.
func ConfigureBinding() {
	binding.EnableDecoderDisallowUnknownFields = true
}

// Register the endpoints for the v2 API
func Register(r *gin.Engine, deps Dependencies) {
	v2 := r.Group(Prefix)

	// Add metrics middleware to all routes
	v2.Use(middleware.MetricsMiddleware())

	RegisterPingRoutes(v2)
	deps.Pokemons.RegisterRoutes(v2)
	deps.Seed.RegisterRoutes(v2)

	// Register metrics endpoint
	RegisterMetricsRoutes(v2)
	RegisterSwaggerRoutes(r)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
