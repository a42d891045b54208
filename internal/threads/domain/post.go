package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTopicID  = errors.New("topic ID is required")
	ErrInvalidAuthorID = errors.New("author ID is required")
)

// Post is a reply within a topic.
type Post struct {
	ID        uuid.UUID
	TopicID   uuid.UUID
	Body      string
	AuthorID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPost creates a post with validation.
func NewPost(topicID uuid.UUID, body string, authorID uuid.UUID) (*Post, error) {
	if topicID == uuid.Nil {
		return nil, ErrInvalidTopicID
	}

	if err := validateBody(body); err != nil {
		return nil, err
	}

	if authorID == uuid.Nil {
		return nil, ErrInvalidAuthorID
	}

	now := time.Now()
	return &Post{
		ID:        uuid.New(),
		TopicID:   topicID,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateBody replaces the post body with validation.
func (p *Post) UpdateBody(body string) error {
	if err := validateBody(body); err != nil {
		return err
	}

	p.Body = body
	p.UpdatedAt = time.Now()
	return nil
}

// IsAuthoredBy reports whether the acting user wrote this post.
func (p *Post) IsAuthoredBy(userID uuid.UUID) bool {
	return p.AuthorID == userID
}
