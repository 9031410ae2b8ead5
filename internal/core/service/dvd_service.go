package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
	"github.com/aegean-rentals/dvd-catalog/internal/core/ports"
)

// DvdService is the cache-aside coordinator: every catalogue read and
// write passes through it, and it is the only writer the cache has. The
// contract is that a cache entry, once present, is always the last value
// this coordinator wrote, which is always derived from a confirmed store
// write — the cache is populated only after the store reports success,
// never speculatively.
//
// Cache failures are non-fatal: the store remains the authority, so a
// failed cache call is logged and the request proceeds against the store.
//
// There is no per-id locking across the store-write/cache-write pair.
// Concurrent updates to the same id race at the store's row-level
// concurrency control (last write wins), and in that narrow window the
// cache may briefly reflect a different order than the store's final
// state. Operations on different ids never contend.
type DvdService struct {
	repo   ports.DvdRepository
	cache  ports.DvdCache
	logger zerolog.Logger
}

func NewDvdService(repo ports.DvdRepository, cache ports.DvdCache, logger zerolog.Logger) *DvdService {
	return &DvdService{repo: repo, cache: cache, logger: logger}
}

// Create validates and sanitizes the input, enforces title uniqueness
// against the store, persists the item and then writes the persisted
// record into the cache. The duplicate check is case-insensitive and runs
// before the insert path is reached.
func (s *DvdService) Create(ctx context.Context, input ports.CreateDvdInput) (*domain.Dvd, error) {
	title := domain.SanitizeTitle(input.Title)
	if title == "" {
		return nil, domain.ErrInvalidDvd
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidDvd
	}

	genre, err := domain.ParseGenre(input.Genre)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateTitle
	}

	created, err := s.repo.Create(ctx, &domain.Dvd{
		Title:    title,
		Genre:    genre,
		Quantity: input.Quantity,
	})
	if err != nil {
		return nil, err
	}

	s.cachePut(ctx, created)
	s.logger.Info().Str("dvd_id", created.ID).Str("title", created.Title).Msg("dvd created")

	return created, nil
}

// FindByID checks the cache first and returns the cached snapshot on a
// hit without touching the store. On a miss the store is read and, when
// the item exists, the fetched value populates the cache for subsequent
// reads. Absence is never cached.
func (s *DvdService) FindByID(ctx context.Context, id string) (*domain.Dvd, error) {
	cached, err := s.cache.Get(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("dvd_id", id).Msg("cache read failed, falling through to store")
	}

	dvd, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cachePut(ctx, dvd)
	return dvd, nil
}

// Find returns items matching the title substring case-insensitively, or
// every item when the title is blank. Search predicates have unbounded
// cardinality, so this path always bypasses the cache and never populates
// it.
func (s *DvdService) Find(ctx context.Context, title string) ([]*domain.Dvd, error) {
	if title != "" {
		return s.repo.FindByTitle(ctx, title)
	}
	return s.repo.FindAll(ctx)
}

// Update applies a partial patch: absent fields are left unchanged, and a
// patch with neither field fails. The current record is read from the
// store, not the cache, so the merge base is always authoritative. The
// merged record is persisted first and only then overwrites the cache
// entry.
func (s *DvdService) Update(ctx context.Context, id string, input ports.UpdateDvdInput) (*domain.Dvd, error) {
	if input.Quantity == nil && input.Genre == nil {
		return nil, domain.ErrInvalidDvd
	}

	dvd, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, domain.ErrInvalidDvd
		}
		dvd.Quantity = *input.Quantity
	}
	if input.Genre != nil {
		genre, err := domain.ParseGenre(*input.Genre)
		if err != nil {
			return nil, err
		}
		dvd.Genre = genre
	}

	if err := s.repo.Update(ctx, dvd); err != nil {
		return nil, err
	}

	s.cachePut(ctx, dvd)
	s.logger.Info().Str("dvd_id", dvd.ID).Msg("dvd updated")

	return dvd, nil
}

// Delete removes the item from the store first — zero rows deleted is a
// not-found, not a silent success — and then drops the cache entry.
func (s *DvdService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Remove(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("dvd_id", id).Msg("cache remove failed")
	}

	s.logger.Info().Str("dvd_id", id).Msg("dvd deleted")
	return nil
}

// cachePut writes a confirmed store record into the cache. Failures are
// logged and swallowed: the next read will miss and repopulate.
func (s *DvdService) cachePut(ctx context.Context, dvd *domain.Dvd) {
	if err := s.cache.Put(ctx, dvd); err != nil {
		s.logger.Warn().Err(err).Str("dvd_id", dvd.ID).Msg("cache write failed")
	}
}
