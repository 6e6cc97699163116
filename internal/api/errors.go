package api

import (
	"errors"
	"net/http"

	"github.com/cobia-app/cobia-api/internal/api/shared"
	"github.com/cobia-app/cobia-api/internal/domain"
	"github.com/cobia-app/cobia-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Malformed or unsafe input
	case domain.IsValidationError(err):
		return http.StatusBadRequest

	// Store failures, including connection failures
	case store.IsStorageError(err):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. Storage errors carry fixed domain messages with the
// underlying store error already stripped at the store boundary; anything
// unrecognized collapses to a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrUnsafeQuery):
		return "Unsafe query."

	case domain.IsValidationError(err):
		return err.Error()

	case errors.Is(err, store.ErrEventCreate):
		return "There's a problem creating the event in the database."

	case errors.Is(err, store.ErrEventFind):
		return "There's a problem finding the events in the database."

	case errors.Is(err, store.ErrListItemFind):
		return "There's a problem finding the documents in the database."

	case store.IsStorageError(err):
		return "There's a problem with the database."

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError converges every handler failure on one response path: the
// status comes from MapErrorToStatusCode, the body carries only the safe
// message, and the full error is logged server-side. A response is always
// sent.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
