package store

import (
	"context"

	"github.com/newsnest/newsnest-api/internal/domain"
)

// TopicStore defines persistence operations for topics.
type TopicStore interface {
	// List retrieves all topics.
	List(ctx context.Context) ([]domain.Topic, error)

	// Create inserts a new topic and returns the stored row.
	// Returns ErrTopicExists if a topic with the same slug already exists.
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
}
