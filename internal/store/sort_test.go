package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    SortColumn
		wantErr bool
	}{
		{name: "empty defaults to created_at", input: "", want: SortByCreatedAt},
		{name: "article_id", input: "article_id", want: SortByArticleID},
		{name: "title", input: "title", want: SortByTitle},
		{name: "author", input: "author", want: SortByAuthor},
		{name: "topic", input: "topic", want: SortByTopic},
		{name: "created_at", input: "created_at", want: SortByCreatedAt},
		{name: "votes", input: "votes", want: SortByVotes},
		{name: "comment_count", input: "comment_count", want: SortByCommentCount},
		{name: "uppercase accepted", input: "VOTES", want: SortByVotes},
		{name: "unknown column rejected", input: "bananas", wantErr: true},
		{name: "sql injection rejected", input: "votes; DROP TABLE articles", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSortColumn(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortColumnOrderExpr(t *testing.T) {
	t.Parallel()

	// Every allow-listed column must map to a fixed expression; nothing
	// client-supplied ever reaches the query string.
	assert.Equal(t, "articles.votes", SortByVotes.OrderExpr())
	assert.Equal(t, "articles.created_at", SortByCreatedAt.OrderExpr())
	assert.Equal(t, "comment_count", SortByCommentCount.OrderExpr())
}

func TestParseSortOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    SortOrder
		wantErr bool
	}{
		{name: "empty defaults to desc", input: "", want: OrderDesc},
		{name: "asc", input: "asc", want: OrderAsc},
		{name: "desc", input: "desc", want: OrderDesc},
		{name: "case insensitive asc", input: "ASC", want: OrderAsc},
		{name: "case insensitive desc", input: "DeSc", want: OrderDesc},
		{name: "invalid rejected", input: "dasc", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSortOrder(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidOrder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListParamsOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ListParams{Limit: 10, Page: 1}.Offset())
	assert.Equal(t, 10, ListParams{Limit: 10, Page: 2}.Offset())
	assert.Equal(t, 15, ListParams{Limit: 5, Page: 4}.Offset())
}

func TestDefaultListParams(t *testing.T) {
	t.Parallel()

	params := DefaultListParams()
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 1, params.Page)
}
