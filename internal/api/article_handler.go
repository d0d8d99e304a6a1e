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

// CreateArticleRequest represents the request body for creating an article.
type CreateArticleRequest struct {
	Author        string `json:"author"          validate:"required"`
	Title         string `json:"title"           validate:"required"`
	Body          string `json:"body"            validate:"required"`
	Topic         string `json:"topic"           validate:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

// UpdateVotesRequest represents the request body for a vote-delta patch.
// The pointer distinguishes an absent inc_votes from an explicit zero.
type UpdateVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleStore store.ArticleStore
	exists       store.ExistenceChecker
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(
	articleStore store.ArticleStore,
	exists store.ExistenceChecker,
	log *slog.Logger,
) *ArticleHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ArticleHandler{
		articleStore: articleStore,
		exists:       exists,
		validator:    validator.New(),
		logger:       log.With(slog.String("component", "article_handler")),
	}
}

// GetArticles handles GET /api/articles requests.
// Query parameters sort_by, order, topic, limit and p are all optional.
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query()

	sortBy, err := store.ParseSortColumn(query.Get("sort_by"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	order, err := store.ParseSortOrder(query.Get("order"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	listParams, err := parseListParams(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	topic := query.Get("topic")
	if topic != "" {
		if err := h.exists.Exists(r.Context(), "topics", "slug", topic); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}

	params := store.ArticleListParams{
		ListParams: listParams,
		SortBy:     sortBy,
		Order:      order,
		Topic:      topic,
	}

	articles, totalCount, err := h.articleStore.List(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// An empty page for a valid filter is a distinct condition, not an
	// error.
	if len(articles) == 0 {
		log.Debug("no articles matched listing", slog.String("topic", topic))
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
			"msg": "No articles found",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"articles":    articlesToResponse(articles),
		"total_count": totalCount,
	})
}

// GetArticleByID handles GET /api/articles/{article_id} requests.
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	article, err := h.articleStore.GetByID(r.Context(), articleID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"article": articleToResponse(article),
	})
}

// PostArticle handles POST /api/articles requests.
// The author and topic are checked before the insert so an unknown
// reference surfaces as a 404 naming whichever is missing, not as a
// foreign-key violation.
func (h *ArticleHandler) PostArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateArticleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed article body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request - malformed body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad request - missing required fields")
		return
	}

	if err := h.exists.Exists(r.Context(), "users", "username", req.Author); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := h.exists.Exists(r.Context(), "topics", "slug", req.Topic); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	article, err := h.articleStore.Create(r.Context(), &domain.Article{
		Title:         req.Title,
		Topic:         req.Topic,
		Author:        req.Author,
		Body:          req.Body,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"article": articleToResponse(article),
	})
}

// PatchArticle handles PATCH /api/articles/{article_id} requests.
// inc_votes is a signed delta applied atomically at the database; votes
// may go negative.
func (h *ArticleHandler) PatchArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathInt(r, "article_id")
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

	article, err := h.articleStore.UpdateVotes(r.Context(), articleID, *req.IncVotes)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"article": articleToResponse(article),
	})
}

// DeleteArticle handles DELETE /api/articles/{article_id} requests.
// The article's comments go with it.
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.articleStore.Delete(r.Context(), articleID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
