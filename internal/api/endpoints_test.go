package api

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPI(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/api", GetAPI)

	rec := executeRequest(t, r, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	endpoints, ok := body["endpoints"].(map[string]interface{})
	require.True(t, ok)

	// Every route the router serves must be documented.
	for _, key := range []string{
		"GET /api",
		"GET /api/topics",
		"POST /api/topics",
		"GET /api/users",
		"GET /api/users/:username",
		"GET /api/articles",
		"POST /api/articles",
		"GET /api/articles/:article_id",
		"PATCH /api/articles/:article_id",
		"DELETE /api/articles/:article_id",
		"GET /api/articles/:article_id/comments",
		"POST /api/articles/:article_id/comments",
		"PATCH /api/comments/:comment_id",
		"DELETE /api/comments/:comment_id",
	} {
		assert.Contains(t, endpoints, key)
	}

	articles, ok := endpoints["GET /api/articles"].(map[string]interface{})
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]interface{}{"sort_by", "order", "topic", "limit", "p"},
		articles["queries"])
}
