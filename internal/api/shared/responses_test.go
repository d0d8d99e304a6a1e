package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	rec := httptest.NewRecorder()

	RespondWithJSON(rec, req, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello": "world"}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes the trace ID when the context carries one", func(t *testing.T) {
		t.Parallel()

		ctx := SetTraceID(context.Background())
		req := httptest.NewRequest(http.MethodGet, "/api/articles/999", nil).WithContext(ctx)
		rec := httptest.NewRecorder()

		RespondWithError(rec, req, http.StatusNotFound, `article "999" not found`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `article \"999\" not found`)
		assert.Contains(t, rec.Body.String(), GetTraceID(ctx))
	})

	t.Run("omits the trace ID when absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		rec := httptest.NewRecorder()

		RespondWithError(rec, req, http.StatusBadRequest, "Invalid sort query")

		assert.JSONEq(t, `{"msg": "Invalid sort query"}`, rec.Body.String())
	})
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	require.NotEmpty(t, traceID)

	// A fresh context has no trace ID.
	assert.Empty(t, GetTraceID(context.Background()))

	// Setting again yields a new ID.
	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(context.Background())))
}
