package api

import (
	"errors"
	"net/http"

	"github.com/newsnest/newsnest-api/internal/api/shared"
	"github.com/newsnest/newsnest-api/internal/domain"
	"github.com/newsnest/newsnest-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidSort),
		errors.Is(err, store.ErrInvalidOrder),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Not-found messages name the missing value and
// entity so a client can tell which reference was at fault.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Internal server error"
	}

	var notFound *store.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return notFound.Error()

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrTopicExists):
		return "Topic already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, store.ErrInvalidSort):
		return "Invalid sort query"

	case errors.Is(err, store.ErrInvalidOrder):
		return "Invalid order query"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrValidation):
		return "Bad request - invalid input"

	default:
		return "Internal server error"
	}
}

// HandleAPIError maps err to a status code and safe message and writes the
// error response. A non-empty overrideMessage replaces the derived message
// while keeping the derived status code.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if overrideMessage != "" {
		message = overrideMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
