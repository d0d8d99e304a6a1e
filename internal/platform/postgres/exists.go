package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/newsnest/newsnest-api/internal/platform/logger"
	"github.com/newsnest/newsnest-api/internal/store"
)

// lookupColumns is the closed allow-list of table/column identifier pairs
// the existence checker may query. Identifiers cannot be bound as query
// parameters, so interpolation is only permitted for pairs listed here.
var lookupColumns = map[string]map[string]bool{
	"topics":   {"slug": true},
	"users":    {"username": true},
	"articles": {"article_id": true},
	"comments": {"comment_id": true},
}

// entityNames maps a table name to the singular entity name used in
// not-found messages.
var entityNames = map[string]string{
	"topics":   "topic",
	"users":    "user",
	"articles": "article",
	"comments": "comment",
}

// ExistenceChecker implements store.ExistenceChecker against PostgreSQL.
type ExistenceChecker struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewExistenceChecker creates an ExistenceChecker. If logger is nil, the
// default logger is used.
func NewExistenceChecker(db store.DBTX, log *slog.Logger) *ExistenceChecker {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ExistenceChecker{
		db:     db,
		logger: log.With(slog.String("component", "existence_checker")),
	}
}

var _ store.ExistenceChecker = (*ExistenceChecker)(nil)

// Exists implements store.ExistenceChecker.Exists.
func (c *ExistenceChecker) Exists(ctx context.Context, table, column string, value any) error {
	log := logger.FromContextOrDefault(ctx, c.logger)

	cols, ok := lookupColumns[table]
	if !ok || !cols[column] {
		// Programming error, not client input.
		return fmt.Errorf("existence check on unknown identifier %s.%s", table, column)
	}

	// Identifiers are validated against the allow-list above; the value is
	// always bound.
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = $1 LIMIT 1", table, column)

	var one int
	err := c.db.QueryRowContext(ctx, query, value).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("existence check missed",
				slog.String("table", table),
				slog.Any("value", value))
			return store.NewNotFoundError(entityNames[table], value)
		}
		if isInvalidTextRepresentation(err) {
			log.Debug("existence check got a mistyped value",
				slog.String("table", table),
				slog.Any("value", value))
			return fmt.Errorf("%w: %s value", store.ErrInvalidEntity, entityNames[table])
		}
		log.Error("existence check failed",
			slog.String("error", err.Error()),
			slog.String("table", table))
		return err
	}

	return nil
}
