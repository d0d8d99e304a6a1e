package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newsnest/newsnest-api/internal/domain"
	"github.com/newsnest/newsnest-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found sentinel", err: store.ErrNotFound, want: http.StatusNotFound},
		{name: "typed not found", err: store.NewNotFoundError("article", 999), want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.NewNotFoundError("user", "x")), want: http.StatusNotFound},
		{name: "duplicate", err: store.ErrDuplicate, want: http.StatusConflict},
		{name: "topic exists", err: store.ErrTopicExists, want: http.StatusConflict},
		{name: "invalid sort", err: store.ErrInvalidSort, want: http.StatusBadRequest},
		{name: "invalid order", err: store.ErrInvalidOrder, want: http.StatusBadRequest},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "invalid id", err: domain.NewValidationError("article_id", "must be a positive integer", domain.ErrInvalidID), want: http.StatusBadRequest},
		{name: "validation", err: domain.ErrValidation, want: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("disk on fire"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "typed not found names entity and value", err: store.NewNotFoundError("article", 999), want: `article "999" not found`},
		{name: "wrapped typed not found", err: fmt.Errorf("lookup: %w", store.NewNotFoundError("topic", "mitch")), want: `topic "mitch" not found`},
		{name: "bare not found sentinel", err: store.ErrNotFound, want: "Resource not found"},
		{name: "topic exists", err: store.ErrTopicExists, want: "Topic already exists"},
		{name: "invalid sort", err: store.ErrInvalidSort, want: "Invalid sort query"},
		{name: "invalid order", err: store.ErrInvalidOrder, want: "Invalid order query"},
		{name: "invalid id", err: domain.NewValidationError("p", "must be a positive integer", domain.ErrInvalidID), want: "Bad request - invalid input"},
		{name: "unknown error stays opaque", err: errors.New("pq: column secrets does not exist"), want: "Internal server error"},
		{name: "nil error", err: nil, want: "Internal server error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}
