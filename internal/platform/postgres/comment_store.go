package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/newsnest/newsnest-api/internal/domain"
	"github.com/newsnest/newsnest-api/internal/platform/logger"
	"github.com/newsnest/newsnest-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	stbl   sq.StatementBuilderType
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. If logger is nil, the default logger is used.
func NewPostgresCommentStore(db store.DBTX, log *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresCommentStore{
		db:     db,
		stbl:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger: log.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*PostgresCommentStore)(nil)

// ListByArticleID implements store.CommentStore.ListByArticleID.
// Comments are returned newest first; total_count is computed with a
// window function so one query serves both the page and the total.
func (s *PostgresCommentStore) ListByArticleID(ctx context.Context, articleID int, params store.ListParams) ([]domain.Comment, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	builder := s.stbl.
		Select(
			"comment_id",
			"article_id",
			"author",
			"body",
			"votes",
			"created_at",
			"COUNT(*) OVER () AS total_count",
		).
		From("comments").
		Where(sq.Eq{"article_id": articleID}).
		OrderBy("created_at DESC").
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset()))

	query, args, err := builder.ToSql()
	if err != nil {
		log.Error("failed to build comment list query", slog.String("error", err.Error()))
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query comments",
			slog.String("error", err.Error()),
			slog.Int("article_id", articleID))
		return nil, 0, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	comments := []domain.Comment{}
	totalCount := 0
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.CommentID,
			&comment.ArticleID,
			&comment.Author,
			&comment.Body,
			&comment.Votes,
			&comment.CreatedAt,
			&totalCount,
		); err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, err
	}

	log.Debug("listed comments",
		slog.Int("article_id", articleID),
		slog.Int("count", len(comments)),
		slog.Int("total_count", totalCount))
	return comments, totalCount, nil
}

// Create implements store.CommentStore.Create.
// Votes and created_at are owned by the database defaults.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()),
			slog.Int("article_id", comment.ArticleID))
		return nil, err
	}

	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var created domain.Comment
	err := s.db.QueryRowContext(ctx, query,
		comment.ArticleID,
		comment.Author,
		comment.Body,
	).Scan(
		&created.CommentID,
		&created.ArticleID,
		&created.Author,
		&created.Body,
		&created.Votes,
		&created.CreatedAt,
	)
	if err != nil {
		// The handlers pre-check the article and author; a violation here
		// means a referenced row vanished between the check and the insert.
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.String("error", err.Error()),
				slog.Int("article_id", comment.ArticleID),
				slog.String("author", comment.Author))
			return nil, fmt.Errorf("%w: article or author does not exist", store.ErrNotFound)
		}
		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.Int("article_id", comment.ArticleID))
		return nil, err
	}

	log.Info("comment created",
		slog.Int("comment_id", created.CommentID),
		slog.Int("article_id", created.ArticleID),
		slog.String("author", created.Author))
	return &created, nil
}

// UpdateVotes implements store.CommentStore.UpdateVotes.
// The delta is applied in a single atomic statement.
func (s *PostgresCommentStore) UpdateVotes(ctx context.Context, commentID, incVotes int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var updated domain.Comment
	err := s.db.QueryRowContext(ctx, query, incVotes, commentID).Scan(
		&updated.CommentID,
		&updated.ArticleID,
		&updated.Author,
		&updated.Body,
		&updated.Votes,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found for vote update", slog.Int("comment_id", commentID))
			return nil, store.NewNotFoundError("comment", commentID)
		}
		log.Error("failed to update comment votes",
			slog.String("error", err.Error()),
			slog.Int("comment_id", commentID))
		return nil, err
	}

	log.Info("comment votes updated",
		slog.Int("comment_id", commentID),
		slog.Int("inc_votes", incVotes),
		slog.Int("votes", updated.Votes))
	return &updated, nil
}

// Delete implements store.CommentStore.Delete.
func (s *PostgresCommentStore) Delete(ctx context.Context, commentID int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int("comment_id", commentID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int("comment_id", commentID))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("comment not found for delete", slog.Int("comment_id", commentID))
		return store.NewNotFoundError("comment", commentID)
	}

	log.Info("comment deleted", slog.Int("comment_id", commentID))
	return nil
}
