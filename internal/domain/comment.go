package domain

import "time"

// Comment is a user's reply on an article. Both the article and the
// author must exist before a comment can be created.
type Comment struct {
	CommentID int
	ArticleID int
	Author    string
	Body      string
	Votes     int
	CreatedAt time.Time
}

// Validate checks the fields required at creation time.
func (c *Comment) Validate() error {
	if c.ArticleID <= 0 {
		return NewValidationError("article_id", "must be a positive integer", ErrInvalidID)
	}
	if c.Author == "" {
		return NewValidationError("author", "cannot be empty", ErrEmptyContent)
	}
	if c.Body == "" {
		return NewValidationError("body", "cannot be empty", ErrEmptyContent)
	}
	return nil
}
