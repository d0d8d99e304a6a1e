package store

import (
	"context"

	"github.com/newsnest/newsnest-api/internal/domain"
)

// CommentStore defines persistence operations for comments.
type CommentStore interface {
	// ListByArticleID retrieves one page of an article's comments, newest
	// first, plus the total comment count for the article. The caller is
	// responsible for checking that the article exists.
	ListByArticleID(ctx context.Context, articleID int, params ListParams) ([]domain.Comment, int, error)

	// Create inserts a new comment and returns the stored row. The caller
	// is responsible for checking that the article and author exist.
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)

	// UpdateVotes atomically applies a signed delta to the comment's vote
	// count and returns the updated row. Returns a *NotFoundError if the
	// comment does not exist.
	UpdateVotes(ctx context.Context, commentID, incVotes int) (*domain.Comment, error)

	// Delete removes the comment. Returns a *NotFoundError if the comment
	// does not exist.
	Delete(ctx context.Context, commentID int) error
}
