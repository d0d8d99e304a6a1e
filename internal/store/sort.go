package store

import (
	"fmt"
	"strings"
)

// SortColumn is a closed enumeration of the columns an article listing may
// be sorted by. Client input is parsed into this type and only the fixed
// expressions below are ever interpolated into an ORDER BY clause; raw
// client text never reaches the query string.
type SortColumn string

const (
	SortByArticleID    SortColumn = "article_id"
	SortByTitle        SortColumn = "title"
	SortByAuthor       SortColumn = "author"
	SortByTopic        SortColumn = "topic"
	SortByCreatedAt    SortColumn = "created_at"
	SortByVotes        SortColumn = "votes"
	SortByCommentCount SortColumn = "comment_count"
)

// orderExprs maps each permitted sort column to a statically-known column
// reference. comment_count refers to the aggregate alias in the listing
// query; everything else is qualified against the articles table.
var orderExprs = map[SortColumn]string{
	SortByArticleID:    "articles.article_id",
	SortByTitle:        "articles.title",
	SortByAuthor:       "articles.author",
	SortByTopic:        "articles.topic",
	SortByCreatedAt:    "articles.created_at",
	SortByVotes:        "articles.votes",
	SortByCommentCount: "comment_count",
}

// ParseSortColumn validates a client-supplied sort_by value against the
// allow-list. An empty value defaults to created_at.
func ParseSortColumn(s string) (SortColumn, error) {
	if s == "" {
		return SortByCreatedAt, nil
	}
	col := SortColumn(strings.ToLower(s))
	if _, ok := orderExprs[col]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
	return col, nil
}

// OrderExpr returns the SQL column reference for the sort column.
func (c SortColumn) OrderExpr() string {
	return orderExprs[c]
}

// SortOrder is the direction of a sort: ascending or descending.
type SortOrder string

const (
	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"
)

// ParseSortOrder validates a client-supplied order value, case-insensitively.
// An empty value defaults to descending (newest first).
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "":
		return OrderDesc, nil
	case "asc":
		return OrderAsc, nil
	case "desc":
		return OrderDesc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOrder, s)
}

// ListParams carries validated pagination parameters. Limit and Page are
// both >= 1 by the time they reach a store.
type ListParams struct {
	Limit int
	Page  int
}

// DefaultListParams returns the pagination defaults: ten items, first page.
func DefaultListParams() ListParams {
	return ListParams{Limit: 10, Page: 1}
}

// Offset returns the row offset for the current page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ArticleListParams carries the full set of validated article listing
// parameters. Topic is optional; an empty string means no topic filter.
type ArticleListParams struct {
	ListParams
	SortBy SortColumn
	Order  SortOrder
	Topic  string
}
