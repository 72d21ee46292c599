package errors

import "fmt"

// Configuration Errors
func ConfigInvalid(reason string) *TeamboardError {
	return NewWithDetails(ErrConfigInvalid, "Invalid configuration", reason)
}

func ConfigParseError(cause error) *TeamboardError {
	return Wrap(ErrConfigParse, "Failed to parse configuration", cause)
}

func RegistryInvalid(cause error) *TeamboardError {
	return WrapWithDetails(ErrRegistryInvalid, "Invalid team registry", cause.Error(), cause)
}

// Database Errors
func DatabaseConnectionError(cause error) *TeamboardError {
	return Wrap(ErrDatabaseConnection, "Database connection failed", cause)
}

func DatabaseQueryError(op string, cause error) *TeamboardError {
	return WrapWithDetails(ErrDatabaseQuery, "Database query failed",
		fmt.Sprintf("Operation: %s", op), cause)
}

func DatabaseMigrationError(cause error) *TeamboardError {
	return Wrap(ErrDatabaseMigration, "Database migration failed", cause)
}

// Auth Errors
func EmailAlreadyRegistered() *TeamboardError {
	return New(ErrEmailTaken, "Email already registered")
}

func InvalidCredentials() *TeamboardError {
	return New(ErrInvalidCredentials, "Invalid credentials")
}

// Unauthenticated reports a failed token check; reason is shown to the client
func Unauthenticated(reason string) *TeamboardError {
	return NewWithDetails(ErrUnauthenticated, "Authentication required", reason)
}

// Validation Errors
func ValidationFailed(field, reason string) *TeamboardError {
	return NewWithDetails(ErrValidationFailed, "Validation failed",
		fmt.Sprintf("%s: %s", field, reason))
}

func InvalidInput(details string) *TeamboardError {
	return NewWithDetails(ErrInvalidInput, "Invalid input", details)
}

// Internal Errors
func InternalError(details string, cause error) *TeamboardError {
	if cause != nil {
		return WrapWithDetails(ErrInternal, "Internal error", details, cause)
	}
	return NewWithDetails(ErrInternal, "Internal error", details)
}

func NotFound(what string) *TeamboardError {
	return NewWithDetails(ErrNotFound, "Not found", what)
}
