package ports

import (
	"context"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
)

// DvdRepository defines durable persistence operations for catalogue items.
// Absence is always signalled with domain.ErrDvdNotFound, never with a
// nil result: Update and Delete return it when zero rows were affected.
type DvdRepository interface {
	// Create inserts the dvd and returns it with the store-assigned id.
	// Fails with domain.ErrDuplicateTitle on a title collision.
	Create(ctx context.Context, dvd *domain.Dvd) (*domain.Dvd, error)
	FindByID(ctx context.Context, id string) (*domain.Dvd, error)
	// FindByTitle returns all items whose title contains the given
	// substring, matched case-insensitively.
	FindByTitle(ctx context.Context, title string) ([]*domain.Dvd, error)
	FindAll(ctx context.Context) ([]*domain.Dvd, error)
	// Update persists the mutable fields (genre, quantity) keyed by id.
	Update(ctx context.Context, dvd *domain.Dvd) error
	Delete(ctx context.Context, id string) error
	// ExistsByTitle reports whether a dvd with this title already exists,
	// compared case-insensitively.
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}
