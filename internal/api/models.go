package api

import (
	"time"

	"github.com/newsnest/newsnest-api/internal/domain"
)

// TopicResponse represents a topic in API responses.
type TopicResponse struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// UserResponse represents a user's public projection in API responses.
type UserResponse struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ArticleResponse represents an article in API responses. Body is omitted
// in listings to keep payloads small and populated for single-article
// fetches and mutations.
type ArticleResponse struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

func topicToResponse(t *domain.Topic) TopicResponse {
	return TopicResponse{
		Slug:        t.Slug,
		Description: t.Description,
	}
}

func topicsToResponse(topics []domain.Topic) []TopicResponse {
	out := make([]TopicResponse, 0, len(topics))
	for i := range topics {
		out = append(out, topicToResponse(&topics[i]))
	}
	return out
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	return out
}

func articleToResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

func articlesToResponse(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, articleToResponse(&articles[i]))
	}
	return out
}

func commentToResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Body:      c.Body,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}

func commentsToResponse(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, commentToResponse(&comments[i]))
	}
	return out
}
