package database

import (
	"context"
	"errors"
	"time"

	"pokedex/config"
	"pokedex/metrics"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Cache stores JSON encoded values in Redis with a fixed TTL.
// A nil *Cache is valid and behaves as an always-missing cache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache returns nil when no Redis server is configured
func NewCache(cfg *config.Config) *Cache {
	if !cfg.CacheEnabled() {
		return nil
	}
	return NewCacheFromClient(redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}), cfg.CacheDuration)
}

func NewCacheFromClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Ping checks the connection to Redis
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// GetFromCache decodes the value stored under key into dest.
// found is false on a miss or when the cache is disabled.
func (c *Cache) GetFromCache(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheMisses.Inc()
		return false, nil
	}
	if err != nil {
		metrics.CacheMisses.Inc()
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		metrics.CacheMisses.Inc()
		return false, err
	}
	metrics.CacheHits.Inc()
	return true, nil
}

// SetToCache stores value under key for the configured duration
func (c *Cache) SetToCache(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Close releases the Redis connection
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
