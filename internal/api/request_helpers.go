package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/newsnest/newsnest-api/internal/domain"
	"github.com/newsnest/newsnest-api/internal/store"
)

// getPathInt extracts a positive integer from the URL path parameters.
// Non-numeric or non-positive values are rejected before any query runs,
// so a malformed id becomes a 400 at the handler rather than an
// invalid-text-representation error at the database.
func getPathInt(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// parseListParams reads the limit and p query parameters, applying the
// defaults (limit 10, page 1) when absent. Non-numeric or sub-1 values
// are rejected.
func parseListParams(r *http.Request) (store.ListParams, error) {
	params := store.DefaultListParams()

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return store.ListParams{}, domain.NewValidationError("limit", "must be a positive integer", domain.ErrInvalidID)
		}
		params.Limit = n
	}

	if raw := r.URL.Query().Get("p"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return store.ListParams{}, domain.NewValidationError("p", "must be a positive integer", domain.ErrInvalidID)
		}
		params.Page = n
	}

	return params, nil
}
