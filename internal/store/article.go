package store

import (
	"context"

	"github.com/newsnest/newsnest-api/internal/domain"
)

// ArticleStore defines persistence operations for articles.
type ArticleStore interface {
	// List retrieves one page of articles plus the total number of rows
	// matching the filter before pagination. List rows exclude the body.
	List(ctx context.Context, params ArticleListParams) ([]domain.Article, int, error)

	// GetByID retrieves a full article, including body and comment count.
	// Returns a *NotFoundError if the article does not exist.
	GetByID(ctx context.Context, articleID int) (*domain.Article, error)

	// Create inserts a new article and returns the stored row. The caller
	// is responsible for checking that author and topic exist.
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)

	// UpdateVotes atomically applies a signed delta to the article's vote
	// count and returns the updated row. Returns a *NotFoundError if the
	// article does not exist.
	UpdateVotes(ctx context.Context, articleID, incVotes int) (*domain.Article, error)

	// Delete removes the article and all comments that reference it, in a
	// single transaction. Returns a *NotFoundError if the article does
	// not exist.
	Delete(ctx context.Context, articleID int) error
}
