package geo

import (
	"github.com/rs/zerolog/log"

	"github.com/incluiaqui/incluiaqui-api/internal/config"
)

// NewProvider picks the geo provider from configuration. The optional
// Redis cache wraps upstream reads; when Redis is unreachable the
// providers just go direct.
func NewProvider(cfg *config.Config) Provider {
	var cache Cache
	if cfg.RedisURL != "" {
		redisCache, err := NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("geo cache disabled, redis unreachable")
		} else {
			cache = redisCache
		}
	}

	switch cfg.GeoProvider {
	case "mapbox":
		return NewMapboxProvider(cfg.MapboxAccessToken, cache)
	default:
		return NewGoogleProvider(cfg.GoogleMapsAPIKey, cache)
	}
}
