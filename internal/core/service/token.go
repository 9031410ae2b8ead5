package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
)

// TokenIssuer turns an authenticated user into a signed, time-bounded
// bearer token. It holds no mutable state: the token is a pure function of
// the user, the signing secret and the current time. Verification lives in
// the auth middleware, which shares the same secret.
type TokenIssuer struct {
	secret string
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue signs an HS256 token with claims {sub = user id, role, iat, exp}.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(user.ID),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.secret))
}
