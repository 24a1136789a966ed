package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"pokedex/database"
	"pokedex/metrics"
	"pokedex/models"

	"github.com/sirupsen/logrus"
)

// PokeResponse is the listing returned by the PokeAPI
type PokeResponse struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []SmallPokemon `json:"results"`
}

// SmallPokemon is one item of a PokeAPI listing
type SmallPokemon struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SeedService imports the PokeAPI listing into the catalog
type SeedService struct {
	http     HTTPAdapter
	pokemons *PokemonService
	cache    *database.Cache
	apiURL   string
	limit    int
	log      logrus.FieldLogger
}

// SeedConfig holds the collaborators of a SeedService. Cache may be nil.
type SeedConfig struct {
	HTTP     HTTPAdapter
	Pokemons *PokemonService
	Cache    *database.Cache
	APIURL   string
	Limit    int
	Logger   logrus.FieldLogger
}

func NewSeedService(cfg SeedConfig) *SeedService {
	return &SeedService{
		http:     cfg.HTTP,
		pokemons: cfg.Pokemons,
		cache:    cfg.Cache,
		apiURL:   cfg.APIURL,
		limit:    cfg.Limit,
		log:      cfg.Logger,
	}
}

// ExecuteSeed replaces the catalog with the first pokemons of the PokeAPI
func (s *SeedService) ExecuteSeed(ctx context.Context) ([]models.Pokemon, error) {
	saved, err := s.executeSeed(ctx)
	if err != nil {
		metrics.SeedRuns.WithLabelValues("failure").Inc()
		return nil, err
	}

	metrics.SeedRuns.WithLabelValues("success").Inc()
	metrics.CatalogSize.Set(float64(len(saved)))
	s.log.WithField("count", len(saved)).Info("seed executed")
	return saved, nil
}

func (s *SeedService) executeSeed(ctx context.Context) ([]models.Pokemon, error) {
	data, err := s.fetchListing(ctx)
	if err != nil {
		return nil, err
	}

	newData := make([]models.Pokemon, 0, len(data.Results))
	for _, result := range data.Results {
		no, err := NumberFromURL(result.URL)
		if err != nil {
			return nil, err
		}
		newData = append(newData, models.Pokemon{Name: result.Name, No: no})
	}

	return s.pokemons.FillPokemonsWithSeedData(ctx, newData)
}

func (s *SeedService) fetchListing(ctx context.Context) (*PokeResponse, error) {
	cacheKey := "pokeapi:list:" + strconv.Itoa(s.limit)

	var data PokeResponse
	found, err := s.cache.GetFromCache(ctx, cacheKey, &data)
	if err != nil {
		s.log.WithError(err).Warn("failed to read pokeapi listing from cache")
	}
	if found {
		return &data, nil
	}

	listURL, err := s.listURL()
	if err != nil {
		return nil, err
	}
	if err := s.http.Get(ctx, listURL, &data); err != nil {
		return nil, err
	}

	if err := s.cache.SetToCache(ctx, cacheKey, data); err != nil {
		s.log.WithError(err).Warn("failed to cache pokeapi listing")
	}
	return &data, nil
}

func (s *SeedService) listURL() (string, error) {
	u, err := url.Parse(s.apiURL)
	if err != nil {
		return "", fmt.Errorf("invalid pokeapi url %q: %w", s.apiURL, err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(s.limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// NumberFromURL extracts the catalog number from a resource url such as
// https://pokeapi.co/api/v2/pokemon/25/
func NumberFromURL(resourceURL string) (int, error) {
	segments := strings.Split(strings.TrimRight(resourceURL, "/"), "/")
	last := segments[len(segments)-1]

	no, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("no catalog number in url %q", resourceURL)
	}
	return no, nil
}
