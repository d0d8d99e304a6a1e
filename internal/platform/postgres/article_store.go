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

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     *sql.DB
	stbl   sq.StatementBuilderType
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the
// ArticleStore interface. It takes a *sql.DB rather than a DBTX because
// Delete manages its own transaction. If logger is nil, the default logger
// is used.
func NewPostgresArticleStore(db *sql.DB, log *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresArticleStore{
		db:     db,
		stbl:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger: log.With(slog.String("component", "article_store")),
	}
}

var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// List implements store.ArticleStore.List.
// One query serves both the page and the pre-pagination total: comment
// counts come from a grouped LEFT JOIN and total_count from a window
// function over the grouped rows. The sort column and direction are closed
// enums validated upstream; the topic filter is parameter-bound.
func (s *PostgresArticleStore) List(ctx context.Context, params store.ArticleListParams) ([]domain.Article, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	builder := s.stbl.
		Select(
			"articles.article_id",
			"articles.title",
			"articles.topic",
			"articles.author",
			"articles.created_at",
			"articles.votes",
			"articles.article_img_url",
			"COUNT(comments.comment_id)::int AS comment_count",
			"COUNT(*) OVER () AS total_count",
		).
		From("articles").
		LeftJoin("comments ON comments.article_id = articles.article_id").
		GroupBy("articles.article_id").
		OrderBy(fmt.Sprintf("%s %s", params.SortBy.OrderExpr(), params.Order)).
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset()))

	if params.Topic != "" {
		builder = builder.Where(sq.Eq{"articles.topic": params.Topic})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Error("failed to build article list query", slog.String("error", err.Error()))
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query articles",
			slog.String("error", err.Error()),
			slog.String("topic", params.Topic))
		return nil, 0, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	articles := []domain.Article{}
	totalCount := 0
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(
			&article.ArticleID,
			&article.Title,
			&article.Topic,
			&article.Author,
			&article.CreatedAt,
			&article.Votes,
			&article.ArticleImgURL,
			&article.CommentCount,
			&totalCount,
		); err != nil {
			log.Error("failed to scan article row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, err
	}

	log.Debug("listed articles",
		slog.Int("count", len(articles)),
		slog.Int("total_count", totalCount),
		slog.String("sort_by", string(params.SortBy)),
		slog.String("order", string(params.Order)))
	return articles, totalCount, nil
}

// GetByID implements store.ArticleStore.GetByID.
// Unlike List, the full row including body is selected.
func (s *PostgresArticleStore) GetByID(ctx context.Context, articleID int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			articles.article_id,
			articles.title,
			articles.topic,
			articles.author,
			articles.body,
			articles.created_at,
			articles.votes,
			articles.article_img_url,
			COUNT(comments.comment_id)::int AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, articleID).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.Int("article_id", articleID))
			return nil, store.NewNotFoundError("article", articleID)
		}
		log.Error("failed to get article by ID",
			slog.String("error", err.Error()),
			slog.Int("article_id", articleID))
		return nil, err
	}

	return &article, nil
}

// Create implements store.ArticleStore.Create.
// Votes and created_at are owned by the database defaults; a fresh article
// has a comment count of zero by construction.
func (s *PostgresArticleStore) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := article.Validate(); err != nil {
		log.Warn("article validation failed during create",
			slog.String("error", err.Error()),
			slog.String("title", article.Title))
		return nil, err
	}

	imgURL := article.ArticleImgURL
	if imgURL == "" {
		imgURL = domain.DefaultArticleImageURL
	}

	query := `
		INSERT INTO articles (title, topic, author, body, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`

	var created domain.Article
	err := s.db.QueryRowContext(ctx, query,
		article.Title,
		article.Topic,
		article.Author,
		article.Body,
		imgURL,
	).Scan(
		&created.ArticleID,
		&created.Title,
		&created.Topic,
		&created.Author,
		&created.Body,
		&created.CreatedAt,
		&created.Votes,
		&created.ArticleImgURL,
	)
	if err != nil {
		// The handlers pre-check author and topic; a violation here means
		// the referenced row vanished between the check and the insert.
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during article creation",
				slog.String("error", err.Error()),
				slog.String("author", article.Author),
				slog.String("topic", article.Topic))
			return nil, fmt.Errorf("%w: author or topic does not exist", store.ErrNotFound)
		}
		log.Error("failed to create article",
			slog.String("error", err.Error()),
			slog.String("title", article.Title))
		return nil, err
	}

	created.CommentCount = 0
	log.Info("article created",
		slog.Int("article_id", created.ArticleID),
		slog.String("author", created.Author),
		slog.String("topic", created.Topic))
	return &created, nil
}

// UpdateVotes implements store.ArticleStore.UpdateVotes.
// The delta is applied in a single atomic statement; the comment count is
// computed in the same round trip so the response row is complete.
func (s *PostgresArticleStore) UpdateVotes(ctx context.Context, articleID, incVotes int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url,
			(SELECT COUNT(*)::int FROM comments WHERE comments.article_id = articles.article_id) AS comment_count
	`

	var updated domain.Article
	err := s.db.QueryRowContext(ctx, query, incVotes, articleID).Scan(
		&updated.ArticleID,
		&updated.Title,
		&updated.Topic,
		&updated.Author,
		&updated.Body,
		&updated.CreatedAt,
		&updated.Votes,
		&updated.ArticleImgURL,
		&updated.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found for vote update", slog.Int("article_id", articleID))
			return nil, store.NewNotFoundError("article", articleID)
		}
		log.Error("failed to update article votes",
			slog.String("error", err.Error()),
			slog.Int("article_id", articleID))
		return nil, err
	}

	log.Info("article votes updated",
		slog.Int("article_id", articleID),
		slog.Int("inc_votes", incVotes),
		slog.Int("votes", updated.Votes))
	return &updated, nil
}

// Delete implements store.ArticleStore.Delete.
// The article's comments and the article itself are removed inside one
// transaction so a failure between the statements cannot leave partial
// state.
func (s *PostgresArticleStore) Delete(ctx context.Context, articleID int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM comments WHERE article_id = $1`, articleID); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM articles WHERE article_id = $1`, articleID)
		if err != nil {
			return err
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return store.NewNotFoundError("article", articleID)
		}
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("article not found for delete", slog.Int("article_id", articleID))
		} else {
			log.Error("failed to delete article",
				slog.String("error", err.Error()),
				slog.Int("article_id", articleID))
		}
		return err
	}

	log.Info("article deleted", slog.Int("article_id", articleID))
	return nil
}
