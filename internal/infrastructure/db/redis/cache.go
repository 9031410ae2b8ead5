package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aegean-rentals/dvd-catalog/internal/api/metrics"
	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
	"github.com/aegean-rentals/dvd-catalog/internal/core/ports"
)

// cacheKey is the Redis hash holding all cached catalogue items: field =
// item id, value = JSON snapshot of the full record.
const cacheKey = "dvds"

// DvdCache implements ports.DvdCache on a single Redis hash. The go-redis
// client is safe for concurrent use, so no additional locking is needed.
type DvdCache struct {
	client *redis.Client
}

// NewDvdCache creates a DvdCache wrapping the given Redis client.
func NewDvdCache(client *redis.Client) *DvdCache {
	return &DvdCache{client: client}
}

// Get returns the cached snapshot for id, or ports.ErrCacheMiss when the
// id has no entry.
func (c *DvdCache) Get(ctx context.Context, id string) (*domain.Dvd, error) {
	val, err := c.client.HGet(ctx, cacheKey, id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheMissesTotal.Inc()
			return nil, ports.ErrCacheMiss
		}
		metrics.CacheErrorsTotal.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var dvd domain.Dvd
	if err := json.Unmarshal([]byte(val), &dvd); err != nil {
		// An undecodable entry is as good as absent.
		metrics.CacheErrorsTotal.WithLabelValues("decode").Inc()
		return nil, fmt.Errorf("cache decode: %w", err)
	}

	metrics.CacheHitsTotal.Inc()
	return &dvd, nil
}

// Put stores the full item snapshot under its id.
func (c *DvdCache) Put(ctx context.Context, dvd *domain.Dvd) error {
	raw, err := json.Marshal(dvd)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	if err := c.client.HSet(ctx, cacheKey, dvd.ID, raw).Err(); err != nil {
		metrics.CacheErrorsTotal.WithLabelValues("put").Inc()
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Remove drops the entry for id. Removing an absent id is a no-op.
func (c *DvdCache) Remove(ctx context.Context, id string) error {
	if err := c.client.HDel(ctx, cacheKey, id).Err(); err != nil {
		metrics.CacheErrorsTotal.WithLabelValues("remove").Inc()
		return fmt.Errorf("cache remove: %w", err)
	}
	return nil
}
