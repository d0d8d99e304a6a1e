// Package mocks provides hand-written mock implementations of the store
// interfaces for handler tests. Each mock exposes function fields; a nil
// field means the call is unexpected and fails loudly via the zero-value
// return.
package mocks

import (
	"context"

	"github.com/newsnest/newsnest-api/internal/domain"
	"github.com/newsnest/newsnest-api/internal/store"
)

// MockTopicStore implements store.TopicStore for testing.
type MockTopicStore struct {
	ListFn   func(ctx context.Context) ([]domain.Topic, error)
	CreateFn func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
}

var _ store.TopicStore = (*MockTopicStore)(nil)

// List implements the TopicStore interface.
func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	return m.ListFn(ctx)
}

// Create implements the TopicStore interface.
func (m *MockTopicStore) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	return m.CreateFn(ctx, topic)
}

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	ListFn          func(ctx context.Context) ([]domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

// List implements the UserStore interface.
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	return m.ListFn(ctx)
}

// GetByUsername implements the UserStore interface.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFn(ctx, username)
}

// MockArticleStore implements store.ArticleStore for testing.
type MockArticleStore struct {
	ListFn        func(ctx context.Context, params store.ArticleListParams) ([]domain.Article, int, error)
	GetByIDFn     func(ctx context.Context, articleID int) (*domain.Article, error)
	CreateFn      func(ctx context.Context, article *domain.Article) (*domain.Article, error)
	UpdateVotesFn func(ctx context.Context, articleID, incVotes int) (*domain.Article, error)
	DeleteFn      func(ctx context.Context, articleID int) error
}

var _ store.ArticleStore = (*MockArticleStore)(nil)

// List implements the ArticleStore interface.
func (m *MockArticleStore) List(ctx context.Context, params store.ArticleListParams) ([]domain.Article, int, error) {
	return m.ListFn(ctx, params)
}

// GetByID implements the ArticleStore interface.
func (m *MockArticleStore) GetByID(ctx context.Context, articleID int) (*domain.Article, error) {
	return m.GetByIDFn(ctx, articleID)
}

// Create implements the ArticleStore interface.
func (m *MockArticleStore) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	return m.CreateFn(ctx, article)
}

// UpdateVotes implements the ArticleStore interface.
func (m *MockArticleStore) UpdateVotes(ctx context.Context, articleID, incVotes int) (*domain.Article, error) {
	return m.UpdateVotesFn(ctx, articleID, incVotes)
}

// Delete implements the ArticleStore interface.
func (m *MockArticleStore) Delete(ctx context.Context, articleID int) error {
	return m.DeleteFn(ctx, articleID)
}

// MockCommentStore implements store.CommentStore for testing.
type MockCommentStore struct {
	ListByArticleIDFn func(ctx context.Context, articleID int, params store.ListParams) ([]domain.Comment, int, error)
	CreateFn          func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	UpdateVotesFn     func(ctx context.Context, commentID, incVotes int) (*domain.Comment, error)
	DeleteFn          func(ctx context.Context, commentID int) error
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// ListByArticleID implements the CommentStore interface.
func (m *MockCommentStore) ListByArticleID(ctx context.Context, articleID int, params store.ListParams) ([]domain.Comment, int, error) {
	return m.ListByArticleIDFn(ctx, articleID, params)
}

// Create implements the CommentStore interface.
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	return m.CreateFn(ctx, comment)
}

// UpdateVotes implements the CommentStore interface.
func (m *MockCommentStore) UpdateVotes(ctx context.Context, commentID, incVotes int) (*domain.Comment, error) {
	return m.UpdateVotesFn(ctx, commentID, incVotes)
}

// Delete implements the CommentStore interface.
func (m *MockCommentStore) Delete(ctx context.Context, commentID int) error {
	return m.DeleteFn(ctx, commentID)
}

// MockExistenceChecker implements store.ExistenceChecker for testing.
// With a nil ExistsFn every check succeeds.
type MockExistenceChecker struct {
	ExistsFn func(ctx context.Context, table, column string, value any) error
}

var _ store.ExistenceChecker = (*MockExistenceChecker)(nil)

// Exists implements the ExistenceChecker interface.
func (m *MockExistenceChecker) Exists(ctx context.Context, table, column string, value any) error {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, table, column, value)
	}
	return nil
}
