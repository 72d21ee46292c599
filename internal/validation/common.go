package validation

import (
	"strings"
	"unicode/utf8"

	"teamboard/internal/constants"
	"teamboard/internal/errors"
)

const (
	maxEmailLength    = 255
	maxFullNameLength = 255
	// the sha256 pre-hash removes the 72 byte limit; this only bounds request size.
	maxPasswordLength = 1024
)

// Email validates an email address for registration and login
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.ValidationFailed("email", "cannot be empty")
	}
	if len(email) > maxEmailLength {
		return errors.ValidationFailed("email", "too long (max 255 characters)")
	}
	if err := validate.Var(email, "email"); err != nil {
		return errors.ValidationFailed("email", "must be a valid email address")
	}
	return nil
}

// Password validates a plaintext password
func Password(password string) error {
	if password == "" {
		return errors.ValidationFailed("password", "cannot be empty")
	}
	if len(password) > maxPasswordLength {
		return errors.ValidationFailed("password", "too long")
	}
	return nil
}

// FullName validates an optional display name
func FullName(name string) error {
	if utf8.RuneCountInString(name) > maxFullNameLength {
		return errors.ValidationFailed("full_name", "too long (max 255 characters)")
	}
	return nil
}

// PortNumber validates a single port number
func PortNumber(field string, port int) error {
	if port < constants.MinPortNumber || port > constants.MaxPortNumber {
		return errors.ValidationFailed(field, "must be between 1 and 65535")
	}
	return nil
}

// NonEmptyString validates that a string is not empty or only whitespace
func NonEmptyString(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.ValidationFailed(field, "cannot be empty or only whitespace")
	}
	return nil
}
