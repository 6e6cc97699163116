package domain

import (
	"errors"
	"fmt"
)

// ValidationError describes a validation failure for a specific field or
// input. It wraps one of the domain sentinel errors so callers can classify
// it with errors.Is while keeping a human-readable message.
type ValidationError struct {
	Field   string // the field or input that failed validation
	Message string // description of the failure
	Err     error  // wrapped sentinel error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field with the
// given message, wrapping the provided sentinel error.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether err is any kind of validation failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrValidation) || errors.Is(err, ErrUnsafeQuery)
}
