// Package errors provides typed error definitions for teamboard.
// Errors carry a stable code that maps onto an HTTP status, so handlers
// can surface auth and validation failures with a descriptive reason.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique identifier for different error types
type ErrorCode string

const (
	// Configuration errors
	ErrConfigInvalid   ErrorCode = "CONFIG_INVALID"
	ErrConfigParse     ErrorCode = "CONFIG_PARSE"
	ErrRegistryInvalid ErrorCode = "REGISTRY_INVALID"

	// Database errors
	ErrDatabaseConnection ErrorCode = "DATABASE_CONNECTION"
	ErrDatabaseQuery      ErrorCode = "DATABASE_QUERY"
	ErrDatabaseMigration  ErrorCode = "DATABASE_MIGRATION"

	// Auth errors
	ErrEmailTaken         ErrorCode = "EMAIL_TAKEN"
	ErrInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrUnauthenticated    ErrorCode = "UNAUTHENTICATED"

	// Validation errors
	ErrValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrInvalidInput     ErrorCode = "INVALID_INPUT"

	// Internal errors
	ErrInternal ErrorCode = "INTERNAL_ERROR"
	ErrNotFound ErrorCode = "NOT_FOUND"
)

// TeamboardError represents a structured error with additional context
type TeamboardError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Cause      error     `json:"-"`
	HTTPStatus int       `json:"-"`
}

// Error implements the error interface
func (e *TeamboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *TeamboardError) Unwrap() error {
	return e.Cause
}

// WithCause adds the underlying cause error
func (e *TeamboardError) WithCause(cause error) *TeamboardError {
	e.Cause = cause
	return e
}

// Reason is the human readable text shown to API clients
func (e *TeamboardError) Reason() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Message
}

// GetHTTPStatus returns the appropriate HTTP status code for this error
func (e *TeamboardError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}

	switch e.Code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInvalidCredentials, ErrUnauthenticated:
		return http.StatusUnauthorized
	case ErrEmailTaken, ErrValidationFailed, ErrInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new TeamboardError
func New(code ErrorCode, message string) *TeamboardError {
	return &TeamboardError{
		Code:    code,
		Message: message,
	}
}

// NewWithDetails creates a new TeamboardError with details
func NewWithDetails(code ErrorCode, message, details string) *TeamboardError {
	return &TeamboardError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Wrap creates a new TeamboardError that wraps an existing error
func Wrap(code ErrorCode, message string, cause error) *TeamboardError {
	return &TeamboardError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithDetails creates a new TeamboardError with details that wraps an existing error
func WrapWithDetails(code ErrorCode, message, details string, cause error) *TeamboardError {
	return &TeamboardError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// As finds the first TeamboardError in err's chain
func As(err error) (*TeamboardError, bool) {
	var te *TeamboardError
	if stderrors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// GetCode extracts the error code from an error, if it's a TeamboardError
func GetCode(err error) ErrorCode {
	if te, ok := As(err); ok {
		return te.Code
	}
	return ""
}

// HasCode checks if an error has a specific error code
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
