package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUsername is returned when a username is missing or blank.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyPassword is returned when a password is missing or blank.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrEmptyName is returned when a shopping list or item name is missing.
	ErrEmptyName = errors.New("name cannot be empty")
)

// ValidationError wraps a field-level validation failure with the field name
// so callers can build precise error responses without string matching.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
