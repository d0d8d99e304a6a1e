package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/newsnest/newsnest-api/internal/api"
	apiMiddleware "github.com/newsnest/newsnest-api/internal/api/middleware"
	"github.com/newsnest/newsnest-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create
// handlers and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	topicHandler := api.NewTopicHandler(app.topicStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)
	articleHandler := api.NewArticleHandler(app.articleStore, app.exists, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.exists, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", api.GetAPI)

		r.Get("/topics", topicHandler.GetTopics)
		r.Post("/topics", topicHandler.PostTopic)

		r.Get("/users", userHandler.GetUsers)
		r.Get("/users/{username}", userHandler.GetUserByUsername)

		r.Get("/articles", articleHandler.GetArticles)
		r.Post("/articles", articleHandler.PostArticle)
		r.Get("/articles/{article_id}", articleHandler.GetArticleByID)
		r.Patch("/articles/{article_id}", articleHandler.PatchArticle)
		r.Delete("/articles/{article_id}", articleHandler.DeleteArticle)

		r.Get("/articles/{article_id}/comments", commentHandler.GetCommentsByArticleID)
		r.Post("/articles/{article_id}/comments", commentHandler.PostComment)

		r.Patch("/comments/{comment_id}", commentHandler.PatchComment)
		r.Delete("/comments/{comment_id}", commentHandler.DeleteComment)
	})

	// Unmatched paths get a JSON 404, independent of entity lookups.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Path not found")
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
