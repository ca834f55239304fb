package geo

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is an optional read-through store for upstream responses. Only geo
// provider payloads go through it; establishment and review data is always
// read fresh from the relational store.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

const (
	cacheTTLDetails = 24 * time.Hour
	cacheTTLGeocode = 30 * 24 * time.Hour
)

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis. A nil return (on connection failure)
// simply disables caching; providers treat a nil Cache as a miss on every
// lookup.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	// Cache failures never fail the request.
	_ = c.client.Set(ctx, key, value, ttl).Err()
}
