package ports

import (
	"context"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
)

// CreateDvdInput carries raw fields for a new catalogue item. Genre is the
// unparsed client string; the service validates it against the closed enum.
type CreateDvdInput struct {
	Title    string
	Genre    string
	Quantity int
}

// UpdateDvdInput is a partial patch: nil fields are left unchanged. At
// least one field must be present.
type UpdateDvdInput struct {
	Quantity *int
	Genre    *string
}

// DvdService defines the catalogue use cases. Every read and write is
// mediated through the cache-aside coordinator.
type DvdService interface {
	Create(ctx context.Context, input CreateDvdInput) (*domain.Dvd, error)
	FindByID(ctx context.Context, id string) (*domain.Dvd, error)
	// Find returns items matching the title substring, or all items when
	// title is blank. This path always bypasses the cache.
	Find(ctx context.Context, title string) ([]*domain.Dvd, error)
	Update(ctx context.Context, id string, input UpdateDvdInput) (*domain.Dvd, error)
	Delete(ctx context.Context, id string) error
}
