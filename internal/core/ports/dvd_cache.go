package ports

import (
	"context"
	"errors"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
)

// ErrCacheMiss is returned by DvdCache.Get when the id has no entry.
var ErrCacheMiss = errors.New("cache miss")

// DvdCache is a shared key-value cache holding full item snapshots keyed by
// id. The cache is a copy, never the authority: only the DvdService writes
// to it, and only after a confirmed store write. Implementations must be
// safe for concurrent use.
type DvdCache interface {
	Get(ctx context.Context, id string) (*domain.Dvd, error)
	Put(ctx context.Context, dvd *domain.Dvd) error
	// Remove is a no-op when the id is absent.
	Remove(ctx context.Context, id string) error
}
