package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific misses are reported as a *NotFoundError, which
	// wraps this sentinel.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or when the database rejects its representation.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidSort is returned when a client-supplied sort column is not
	// in the allow-list.
	ErrInvalidSort = errors.New("invalid sort query")

	// ErrInvalidOrder is returned when a client-supplied sort direction is
	// neither asc nor desc.
	ErrInvalidOrder = errors.New("invalid order query")

	// ErrTopicExists indicates that a topic with the given slug already
	// exists. Returned when the topics primary-key constraint fires.
	ErrTopicExists = fmt.Errorf("%w: topic", ErrDuplicate)

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")
)

// NotFoundError reports a missing entity, carrying the entity name and the
// identifying value so the API layer can surface a message that names both.
// It wraps ErrNotFound for classification with errors.Is.
type NotFoundError struct {
	Entity string // e.g. "article", "user", "topic", "comment"
	Value  string // the identifier that missed, e.g. "999" or "icellusedkars"
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Value)
}

// Unwrap returns ErrNotFound so errors.Is(err, ErrNotFound) holds.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a NotFoundError for the given entity and value.
func NewNotFoundError(entity string, value any) *NotFoundError {
	return &NotFoundError{
		Entity: entity,
		Value:  fmt.Sprintf("%v", value),
	}
}

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
