package service

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
	"github.com/aegean-rentals/dvd-catalog/internal/core/ports"
)

const (
	maxNameLength     = 30
	maxEmailLength    = 50
	minPasswordLength = 8
	maxPasswordLength = 128
)

var (
	lettersOnlyRe = regexp.MustCompile(`^[a-zA-Z]+$`)
	emailRe       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// validateCredentials checks raw registration input before it reaches the
// identity store. Validation short-circuits on the first failure in a
// fixed field order: name, then email, then password. Every failure wraps
// domain.ErrInvalidCredentials with the violated rule's message.
func validateCredentials(input ports.RegisterInput) error {
	if err := validateName(input.Firstname, "firstname"); err != nil {
		return err
	}
	if err := validateName(input.Lastname, "lastname"); err != nil {
		return err
	}
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	return validatePassword(input.Password)
}

func validateName(name, field string) error {
	if name == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidCredentials, field)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: invalid %s, too many characters", domain.ErrInvalidCredentials, field)
	}
	if !lettersOnlyRe.MatchString(name) {
		return fmt.Errorf("%w: invalid %s, name should contain only letters", domain.ErrInvalidCredentials, field)
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > maxEmailLength {
		return fmt.Errorf("%w: invalid email, too many characters", domain.ErrInvalidCredentials)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: invalid email", domain.ErrInvalidCredentials)
	}
	return nil
}

// validatePassword enforces length and character-class rules. Only the
// first violated rule is reported.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidCredentials, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be at most %d characters", domain.ErrInvalidCredentials, maxPasswordLength)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	switch {
	case !upper:
		return fmt.Errorf("%w: password must contain at least one uppercase character", domain.ErrInvalidCredentials)
	case !lower:
		return fmt.Errorf("%w: password must contain at least one lowercase character", domain.ErrInvalidCredentials)
	case !digit:
		return fmt.Errorf("%w: password must contain at least one digit", domain.ErrInvalidCredentials)
	case !special:
		return fmt.Errorf("%w: password must contain at least one special character", domain.ErrInvalidCredentials)
	}
	return nil
}
