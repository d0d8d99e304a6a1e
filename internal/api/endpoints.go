package api

import (
	"net/http"

	"github.com/newsnest/newsnest-api/internal/api/shared"
)

// EndpointDoc describes one endpoint in the GET /api documentation object.
type EndpointDoc struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
	Body        []string `json:"exampleBody,omitempty"`
}

// endpointDocs is the static documentation object served at GET /api.
var endpointDocs = map[string]EndpointDoc{
	"GET /api": {
		Description: "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
	},
	"POST /api/topics": {
		Description: "creates a new topic and serves it back",
		Body:        []string{"slug", "description"},
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves a single user by username",
	},
	"GET /api/articles": {
		Description: "serves a paginated array of articles with comment counts, plus a total_count",
		Queries:     []string{"sort_by", "order", "topic", "limit", "p"},
	},
	"POST /api/articles": {
		Description: "creates a new article and serves it back",
		Body:        []string{"author", "title", "body", "topic", "article_img_url"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article, including body and comment_count",
	},
	"PATCH /api/articles/:article_id": {
		Description: "applies a signed inc_votes delta to an article's votes and serves the updated article",
		Body:        []string{"inc_votes"},
	},
	"DELETE /api/articles/:article_id": {
		Description: "deletes an article and all of its comments",
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves a paginated array of an article's comments, newest first, plus a total_count",
		Queries:     []string{"limit", "p"},
	},
	"POST /api/articles/:article_id/comments": {
		Description: "creates a new comment on an article and serves it back",
		Body:        []string{"username", "body"},
	},
	"PATCH /api/comments/:comment_id": {
		Description: "applies a signed inc_votes delta to a comment's votes and serves the updated comment",
		Body:        []string{"inc_votes"},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment",
	},
}

// GetAPI handles GET /api requests, serving the endpoint documentation
// object.
func GetAPI(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"endpoints": endpointDocs,
	})
}
