package ports

import (
	"context"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
)

// RegisterInput carries raw registration fields before validation.
type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
	Role      string
}

// AuthService implements registration and login, returning a signed bearer
// token on success.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
