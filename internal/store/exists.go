package store

import "context"

// ExistenceChecker confirms that at least one row matches a column value.
// It is used as a guard before mutations whose target or foreign reference
// may not exist, turning would-be constraint violations into clean 404s.
//
// Table and column are application-supplied identifiers, never client
// input; implementations still validate them against a closed allow-list
// because identifiers cannot be bound as query parameters.
type ExistenceChecker interface {
	// Exists returns nil if at least one row in table has column = value.
	// Returns a *NotFoundError naming the entity and value otherwise.
	Exists(ctx context.Context, table, column string, value any) error
}
