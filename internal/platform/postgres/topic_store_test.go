package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsnest/newsnest-api/internal/domain"
	"github.com/newsnest/newsnest-api/internal/store"
)

func TestPostgresTopicStore_List(t *testing.T) {
	t.Parallel()

	t.Run("returns all topics ordered by slug", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		topicStore := NewPostgresTopicStore(db, nil)

		rows := sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("cats", "Not dogs").
			AddRow("coding", "Code is love, code is life")

		mock.ExpectQuery(`SELECT slug, description\s+FROM topics`).
			WillReturnRows(rows)

		topics, err := topicStore.List(context.Background())
		require.NoError(t, err)
		require.Len(t, topics, 2)
		assert.Equal(t, "cats", topics[0].Slug)
		assert.Equal(t, "Code is love, code is life", topics[1].Description)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice when no topics exist", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		topicStore := NewPostgresTopicStore(db, nil)

		mock.ExpectQuery(`SELECT slug, description\s+FROM topics`).
			WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}))

		topics, err := topicStore.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, topics)
		assert.Empty(t, topics)
	})

	t.Run("propagates query errors", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		topicStore := NewPostgresTopicStore(db, nil)

		mock.ExpectQuery(`SELECT slug, description\s+FROM topics`).
			WillReturnError(errors.New("connection reset"))

		_, err = topicStore.List(context.Background())
		assert.Error(t, err)
	})
}

func TestPostgresTopicStore_Create(t *testing.T) {
	t.Parallel()

	t.Run("inserts and returns the created topic", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		topicStore := NewPostgresTopicStore(db, nil)

		mock.ExpectQuery(`INSERT INTO topics \(slug, description\)`).
			WithArgs("gardening", "All things green").
			WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
				AddRow("gardening", "All things green"))

		created, err := topicStore.Create(context.Background(), &domain.Topic{
			Slug:        "gardening",
			Description: "All things green",
		})
		require.NoError(t, err)
		assert.Equal(t, "gardening", created.Slug)
		assert.Equal(t, "All things green", created.Description)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violation to ErrTopicExists", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		topicStore := NewPostgresTopicStore(db, nil)

		mock.ExpectQuery(`INSERT INTO topics`).
			WithArgs("cats", "Not dogs").
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolationCode})

		_, err = topicStore.Create(context.Background(), &domain.Topic{
			Slug:        "cats",
			Description: "Not dogs",
		})
		assert.ErrorIs(t, err, store.ErrTopicExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("rejects a topic with an empty slug before touching the database", func(t *testing.T) {
		t.Parallel()

		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		topicStore := NewPostgresTopicStore(db, nil)

		_, err = topicStore.Create(context.Background(), &domain.Topic{Description: "no slug"})
		assert.Error(t, err)
	})
}
