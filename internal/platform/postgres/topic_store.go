package postgres

import (
	"context"
	"log/slog"

	"github.com/newsnest/newsnest-api/internal/domain"
	"github.com/newsnest/newsnest-api/internal/platform/logger"
	"github.com/newsnest/newsnest-api/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the
// TopicStore interface. If logger is nil, the default logger is used.
func NewPostgresTopicStore(db store.DBTX, log *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresTopicStore{
		db:     db,
		logger: log.With(slog.String("component", "topic_store")),
	}
}

var _ store.TopicStore = (*PostgresTopicStore)(nil)

// List implements store.TopicStore.List.
func (s *PostgresTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT slug, description
		FROM topics
		ORDER BY slug ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query topics", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	topics := []domain.Topic{}
	for rows.Next() {
		var topic domain.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			log.Error("failed to scan topic row", slog.String("error", err.Error()))
			return nil, err
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return topics, nil
}

// Create implements store.TopicStore.Create.
// The insert relies on the topics primary-key constraint for slug
// uniqueness, so duplicate creation is atomic: a unique violation maps to
// store.ErrTopicExists with no check-then-insert round trip.
func (s *PostgresTopicStore) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := topic.Validate(); err != nil {
		log.Warn("topic validation failed during create",
			slog.String("error", err.Error()),
			slog.String("slug", topic.Slug))
		return nil, err
	}

	query := `
		INSERT INTO topics (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description
	`

	var created domain.Topic
	err := s.db.QueryRowContext(ctx, query, topic.Slug, topic.Description).
		Scan(&created.Slug, &created.Description)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate topic slug", slog.String("slug", topic.Slug))
			return nil, store.ErrTopicExists
		}
		log.Error("failed to create topic",
			slog.String("error", err.Error()),
			slog.String("slug", topic.Slug))
		return nil, err
	}

	log.Info("topic created", slog.String("slug", created.Slug))
	return &created, nil
}
