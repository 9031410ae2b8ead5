package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
	"github.com/aegean-rentals/dvd-catalog/internal/core/ports"
)

// AuthService implements registration and login. Passwords are stored only
// as bcrypt hashes; successful calls return a signed bearer token.
type AuthService struct {
	repo   ports.AuthRepository
	issuer *TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, issuer *TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, logger: logger}
}

// Register validates the raw input (name, email, password strength, role),
// hashes the password and persists the identity. Fails with
// domain.ErrDuplicateEmail when the email is already taken under
// case-insensitive comparison.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if err := validateCredentials(input); err != nil {
		return "", nil, err
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Firstname:    input.Firstname,
		Lastname:     input.Lastname,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issuer.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")
	return token, created, nil
}

// Login verifies the email/password pair against the stored hash and
// issues a token. An unknown email and a wrong password both surface as
// domain.ErrInvalidCredentials so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
