package domain

import "time"

// DefaultArticleImageURL is used when an article is created without an
// image URL of its own.
const DefaultArticleImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a published piece written by a user under a topic.
// CommentCount is derived (a join count), never stored.
type Article struct {
	ArticleID     int
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
	CommentCount  int
}

// Validate checks the fields required at creation time. Votes and
// CreatedAt are owned by the database; CommentCount is derived.
func (a *Article) Validate() error {
	if a.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyContent)
	}
	if a.Topic == "" {
		return NewValidationError("topic", "cannot be empty", ErrEmptyContent)
	}
	if a.Author == "" {
		return NewValidationError("author", "cannot be empty", ErrEmptyContent)
	}
	if a.Body == "" {
		return NewValidationError("body", "cannot be empty", ErrEmptyContent)
	}
	return nil
}
