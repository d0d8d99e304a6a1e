package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsnest/newsnest-api/internal/domain"
	"github.com/newsnest/newsnest-api/internal/mocks"
)

func newTestApplication() *application {
	return &application{
		logger: slog.Default(),
		topicStore: &mocks.MockTopicStore{
			ListFn: func(ctx context.Context) ([]domain.Topic, error) {
				return []domain.Topic{{Slug: "cats", Description: "Not dogs"}}, nil
			},
		},
		userStore:    &mocks.MockUserStore{},
		articleStore: &mocks.MockArticleStore{},
		commentStore: &mocks.MockCommentStore{},
		exists:       &mocks.MockExistenceChecker{},
	}
}

func TestSetupRouter(t *testing.T) {
	t.Parallel()

	t.Run("serves registered routes", func(t *testing.T) {
		t.Parallel()

		router := newTestApplication().setupRouter()

		req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "cats")
	})

	t.Run("serves the endpoint documentation at the API root", func(t *testing.T) {
		t.Parallel()

		router := newTestApplication().setupRouter()

		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "endpoints")
	})

	t.Run("unknown paths get a JSON 404", func(t *testing.T) {
		t.Parallel()

		router := newTestApplication().setupRouter()

		req := httptest.NewRequest(http.MethodGet, "/api/bananas", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Path not found")
	})

	t.Run("health check responds OK", func(t *testing.T) {
		t.Parallel()

		router := newTestApplication().setupRouter()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})
}
