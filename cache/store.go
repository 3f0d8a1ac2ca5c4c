package catalog_cache

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewStore picks the store for driver ("memory", "redis" or "none").
// The redis driver needs a non-nil client.
func NewStore(driver string, ttl time.Duration, client *redis.Client, logger zerolog.Logger) (CatalogStore, error) {
	switch driver {
	case "", "memory":
		return NewMemoryStore(ttl), nil
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("cache driver redis: no redis client")
		}
		return NewRedisStore(client, ttl, logger), nil
	case "none":
		return NoopStore{}, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", driver)
	}
}
