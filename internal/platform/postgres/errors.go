package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes this layer translates into store errors.
const (
	pgInvalidTextRepresentationCode = "22P02"
	pgForeignKeyViolationCode       = "23503"
	pgUniqueViolationCode           = "23505"
)

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, such as a duplicate topic slug.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

// isForeignKeyViolation checks if the given error is a PostgreSQL foreign
// key violation. The handlers pre-check referenced rows, so in practice
// this only fires when a referenced row is deleted between the check and
// the mutation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode
}

// isInvalidTextRepresentation checks if the given error is a PostgreSQL
// invalid-text-representation error, e.g. a non-numeric string bound to an
// integer column.
func isInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentationCode
}
