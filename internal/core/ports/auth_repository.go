package ports

import (
	"context"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
)

// AuthRepository defines the interface for user identity persistence.
// Email uniqueness is case-insensitive: Create fails with
// domain.ErrDuplicateEmail when a user with the same email already exists
// under case-insensitive comparison.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
