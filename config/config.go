package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Default values applied when the matching environment variable is unset
const (
	DefaultPort          = 3005
	DefaultLimit         = 6
	DefaultSeedLimit     = 650
	DefaultPokeAPIURL    = "https://pokeapi.co/api/v2/pokemon"
	DefaultCacheDuration = 10 * time.Minute
	DefaultPublicDir     = "public"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
	DefaultGinMode       = "release"
)

// Config holds every setting the API needs at startup.
// It is built once by Load and handed to each component explicitly.
type Config struct {
	DatabaseURL   string `validate:"required"`
	Port          int    `validate:"min=1,max=65535"`
	DefaultLimit  int    `validate:"min=1"`
	SeedLimit     int    `validate:"min=1"`
	PokeAPIURL    string `validate:"required,url"`
	RedisAddr     string `validate:"omitempty,hostname_port"`
	RedisPassword string
	RedisDB       int           `validate:"min=0"`
	CacheDuration time.Duration `validate:"min=0"`
	PublicDir     string
	LogLevel      string `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat     string `validate:"oneof=json text"`
	GinMode       string `validate:"oneof=debug release test"`
	CORSOrigins   []string
}

// LookupFunc returns the value of an environment variable and whether it was set
type LookupFunc func(key string) (string, bool)

// Load reads the optional .env file then builds the Config from the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return LoadFromEnv(os.LookupEnv)
}

// LoadFromEnv builds and validates a Config using the given lookup function
func LoadFromEnv(lookup LookupFunc) (*Config, error) {
	var err error
	cfg := &Config{
		DatabaseURL:   stringOr(lookup, "DATABASE_URL", ""),
		PokeAPIURL:    stringOr(lookup, "POKEAPI_URL", DefaultPokeAPIURL),
		RedisAddr:     stringOr(lookup, "REDIS_ADDR", ""),
		RedisPassword: stringOr(lookup, "REDIS_PASSWORD", ""),
		PublicDir:     stringOr(lookup, "PUBLIC_DIR", DefaultPublicDir),
		LogLevel:      strings.ToLower(stringOr(lookup, "LOG_LEVEL", DefaultLogLevel)),
		LogFormat:     strings.ToLower(stringOr(lookup, "LOG_FORMAT", DefaultLogFormat)),
		GinMode:       strings.ToLower(stringOr(lookup, "GIN_MODE", DefaultGinMode)),
		CORSOrigins:   splitList(stringOr(lookup, "CORS_ORIGINS", "*")),
	}

	if cfg.Port, err = intOr(lookup, "PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.DefaultLimit, err = intOr(lookup, "DEFAULT_LIMIT", DefaultLimit); err != nil {
		return nil, err
	}
	if cfg.SeedLimit, err = intOr(lookup, "SEED_LIMIT", DefaultSeedLimit); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = intOr(lookup, "REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.CacheDuration, err = durationOr(lookup, "CACHE_DURATION", DefaultCacheDuration); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its struct tag. It must be called again
// after a field is overridden, e.g. by a command line flag.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid configuration: %s failed on %q", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// CacheEnabled reports whether a Redis server was configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func stringOr(lookup LookupFunc, key, fallback string) string {
	if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func intOr(lookup LookupFunc, key string, fallback int) (int, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, v)
	}
	return n, nil
}

func durationOr(lookup LookupFunc, key string, fallback time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration, got %q", key, v)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
