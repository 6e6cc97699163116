// Package domain defines the core entities and errors of the cobia API.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application. The specific errors wrap
// ErrValidation so callers can classify any of them with errors.Is.
var (
	// ErrValidation is returned when inbound data fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrUnsafeQuery is returned when a query string contains an operator
	// that could execute arbitrary code in the store (e.g. $where).
	ErrUnsafeQuery = fmt.Errorf("%w: unsafe query", ErrValidation)

	// ErrEmptyBody is returned when a request body is missing or is not a
	// non-empty JSON object.
	ErrEmptyBody = fmt.Errorf("%w: no event document found in the request body", ErrValidation)

	// ErrMissingDateTime is returned when an event document has no dateTime
	// field, or the field is not a string.
	ErrMissingDateTime = fmt.Errorf("%w: event document has no dateTime string", ErrValidation)

	// ErrInvalidDateTime is returned when an event dateTime string cannot be
	// parsed as an ISO 8601 date.
	ErrInvalidDateTime = fmt.Errorf("%w: invalid dateTime format", ErrValidation)
)
