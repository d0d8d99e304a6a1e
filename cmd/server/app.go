package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/newsnest/newsnest-api/internal/config"
	"github.com/newsnest/newsnest-api/internal/platform/postgres"
	"github.com/newsnest/newsnest-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	topicStore   store.TopicStore
	userStore    store.UserStore
	articleStore store.ArticleStore
	commentStore store.CommentStore
	exists       store.ExistenceChecker
}

// newApplication creates a new application instance with all dependencies
// initialized. The configuration, logger and database connection must be
// established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		topicStore:   postgres.NewPostgresTopicStore(db, logger),
		userStore:    postgres.NewPostgresUserStore(db, logger),
		articleStore: postgres.NewPostgresArticleStore(db, logger),
		commentStore: postgres.NewPostgresCommentStore(db, logger),
		exists:       postgres.NewExistenceChecker(db, logger),
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
