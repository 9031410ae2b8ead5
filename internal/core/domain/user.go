package domain

import (
	"errors"
	"strings"
	"time"
)

// UserRole is the closed set of roles an account may hold. Employees may
// manage the catalogue; customers only authenticate.
type UserRole string

const (
	RoleEmployee UserRole = "ROLE_EMPLOYEE"
	RoleCustomer UserRole = "ROLE_CUSTOMER"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrDuplicateEmail = errors.New("email already exists")
var ErrUserNotFound = errors.New("user not found")

// ParseRole converts user-supplied input to a UserRole, tolerating case
// and surrounding whitespace ("  emploYee " parses to ROLE_EMPLOYEE).
func ParseRole(s string) (UserRole, error) {
	role := UserRole("ROLE_" + strings.ToUpper(strings.TrimSpace(s)))
	if role != RoleEmployee && role != RoleCustomer {
		return "", ErrInvalidCredentials
	}
	return role, nil
}

// User models an authenticated actor. PasswordHash is the bcrypt hash of
// the registration password; the plaintext is never stored.
type User struct {
	ID           int       `json:"id"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
