// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/newsnest/newsnest-api/internal/api/shared"
	"github.com/newsnest/newsnest-api/internal/domain"
	"github.com/newsnest/newsnest-api/internal/platform/logger"
	"github.com/newsnest/newsnest-api/internal/store"
)

// CreateTopicRequest represents the request body for creating a new topic.
// Both slug and topic are accepted as the identifier key; slug wins when
// both are present.
type CreateTopicRequest struct {
	Slug        string `json:"slug"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// TopicHandler handles topic-related HTTP requests.
type TopicHandler struct {
	topicStore store.TopicStore
	logger     *slog.Logger
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(topicStore store.TopicStore, log *slog.Logger) *TopicHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TopicHandler{
		topicStore: topicStore,
		logger:     log.With(slog.String("component", "topic_handler")),
	}
}

// GetTopics handles GET /api/topics requests.
func (h *TopicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"topics": topicsToResponse(topics),
	})
}

// PostTopic handles POST /api/topics requests.
// Slug uniqueness is enforced by the insert itself; a duplicate comes back
// as 409 without a separate lookup.
func (h *TopicHandler) PostTopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTopicRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed topic body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request - malformed body")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = req.Topic
	}
	if slug == "" || req.Description == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request - missing required fields")
		return
	}

	topic, err := h.topicStore.Create(r.Context(), &domain.Topic{
		Slug:        slug,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"topic": topicToResponse(topic),
	})
}
