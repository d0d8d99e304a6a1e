package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsnest/newsnest-api/internal/store"
)

func TestExistenceChecker_Exists(t *testing.T) {
	t.Parallel()

	t.Run("succeeds when the row exists", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		checker := NewExistenceChecker(db, nil)

		mock.ExpectQuery(`SELECT 1 FROM topics WHERE slug = \$1 LIMIT 1`).
			WithArgs("cats").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		require.NoError(t, checker.Exists(context.Background(), "topics", "slug", "cats"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns NotFoundError naming the entity on a miss", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		checker := NewExistenceChecker(db, nil)

		mock.ExpectQuery(`SELECT 1 FROM articles WHERE article_id = \$1 LIMIT 1`).
			WithArgs(999).
			WillReturnError(sql.ErrNoRows)

		err = checker.Exists(context.Background(), "articles", "article_id", 999)
		assert.True(t, store.IsNotFoundError(err))
		assert.Equal(t, `article "999" not found`, err.Error())
	})

	t.Run("maps a mistyped bound value to ErrInvalidEntity", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		checker := NewExistenceChecker(db, nil)

		mock.ExpectQuery(`SELECT 1 FROM articles WHERE article_id = \$1 LIMIT 1`).
			WithArgs("banana").
			WillReturnError(&pgconn.PgError{Code: pgInvalidTextRepresentationCode})

		err = checker.Exists(context.Background(), "articles", "article_id", "banana")
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("rejects identifiers outside the allow-list", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		checker := NewExistenceChecker(db, nil)

		// No query expectation: the checker must fail before reaching the
		// database.
		err = checker.Exists(context.Background(), "pg_tables; --", "slug", "cats")
		require.Error(t, err)
		assert.False(t, store.IsNotFoundError(err))

		err = checker.Exists(context.Background(), "topics", "description", "cats")
		require.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
