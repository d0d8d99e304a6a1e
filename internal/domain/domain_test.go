package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete topic", func(t *testing.T) {
		t.Parallel()

		topic := Topic{Slug: "cats", Description: "Not dogs"}
		assert.NoError(t, topic.Validate())
	})

	t.Run("rejects an empty slug", func(t *testing.T) {
		t.Parallel()

		topic := Topic{Description: "Not dogs"}
		err := topic.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("rejects an empty description", func(t *testing.T) {
		t.Parallel()

		topic := Topic{Slug: "cats"}
		assert.ErrorIs(t, topic.Validate(), ErrEmptyContent)
	})
}

func TestArticleValidate(t *testing.T) {
	t.Parallel()

	valid := func() Article {
		return Article{
			Title:  "Living in the shadow of a great man",
			Topic:  "coding",
			Author: "butter_bridge",
			Body:   "I find this existence challenging",
		}
	}

	t.Run("accepts a complete article", func(t *testing.T) {
		t.Parallel()

		article := valid()
		assert.NoError(t, article.Validate())
	})

	tests := []struct {
		name  string
		strip func(*Article)
		field string
	}{
		{name: "missing title", strip: func(a *Article) { a.Title = "" }, field: "title"},
		{name: "missing topic", strip: func(a *Article) { a.Topic = "" }, field: "topic"},
		{name: "missing author", strip: func(a *Article) { a.Author = "" }, field: "author"},
		{name: "missing body", strip: func(a *Article) { a.Body = "" }, field: "body"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			article := valid()
			tt.strip(&article)

			err := article.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEmptyContent)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCommentValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete comment", func(t *testing.T) {
		t.Parallel()

		comment := Comment{ArticleID: 1, Author: "butter_bridge", Body: "Great article!"}
		assert.NoError(t, comment.Validate())
	})

	t.Run("rejects a non-positive article id", func(t *testing.T) {
		t.Parallel()

		comment := Comment{Author: "butter_bridge", Body: "Great article!"}
		assert.ErrorIs(t, comment.Validate(), ErrInvalidID)
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		t.Parallel()

		comment := Comment{ArticleID: 1, Author: "butter_bridge"}
		assert.ErrorIs(t, comment.Validate(), ErrEmptyContent)
	})
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "cannot be empty", ErrEmptyContent)
	assert.Equal(t, "title cannot be empty", err.Error())
	assert.ErrorIs(t, err, ErrEmptyContent)
}
