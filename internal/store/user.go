package store

import (
	"context"

	"github.com/newsnest/newsnest-api/internal/domain"
)

// UserStore defines persistence operations for users. Users are read-only
// through this API.
type UserStore interface {
	// List retrieves all users.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername retrieves a single user's public projection.
	// Returns a *NotFoundError naming the username if it does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
