package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/newsnest/newsnest-api/internal/api/shared"
	"github.com/newsnest/newsnest-api/internal/domain"
	"github.com/newsnest/newsnest-api/internal/platform/logger"
	"github.com/newsnest/newsnest-api/internal/store"
)

// CreateCommentRequest represents the request body for posting a comment.
type CreateCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body"     validate:"required"`
}

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentStore store.CommentStore
	exists       store.ExistenceChecker
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(
	commentStore store.CommentStore,
	exists store.ExistenceChecker,
	log *slog.Logger,
) *CommentHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CommentHandler{
		commentStore: commentStore,
		exists:       exists,
		validator:    validator.New(),
		logger:       log.With(slog.String("component", "comment_handler")),
	}
}

// GetCommentsByArticleID handles GET /api/articles/{article_id}/comments
// requests. The article must exist; an article with no comments is a
// distinct condition, not an error.
func (h *CommentHandler) GetCommentsByArticleID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	listParams, err := parseListParams(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.exists.Exists(r.Context(), "articles", "article_id", articleID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comments, totalCount, err := h.commentStore.ListByArticleID(r.Context(), articleID, listParams)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if len(comments) == 0 {
		log.Debug("article has no comments", slog.Int("article_id", articleID))
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
			"msg": "No comments found",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"comments":    commentsToResponse(comments),
		"total_count": totalCount,
	})
}

// PostComment handles POST /api/articles/{article_id}/comments requests.
// The article and the author are checked before the insert so an unknown
// reference surfaces as a 404 naming whichever is missing.
func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed comment body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request - malformed body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request - missing required fields")
		return
	}

	if err := h.exists.Exists(r.Context(), "articles", "article_id", articleID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := h.exists.Exists(r.Context(), "users", "username", req.Username); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comment, err := h.commentStore.Create(r.Context(), &domain.Comment{
		ArticleID: articleID,
		Author:    req.Username,
		Body:      req.Body,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"comment": commentToResponse(comment),
	})
}

// PatchComment handles PATCH /api/comments/{comment_id} requests.
func (h *CommentHandler) PatchComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	commentID, err := getPathInt(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateVotesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed vote patch body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request - invalid input")
		return
	}
	if req.IncVotes == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request - inc_votes is required")
		return
	}

	comment, err := h.commentStore.UpdateVotes(r.Context(), commentID, *req.IncVotes)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"comment": commentToResponse(comment),
	})
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := getPathInt(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.commentStore.Delete(r.Context(), commentID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
