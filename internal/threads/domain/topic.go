package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Business rule constants
const (
	MaxTitleLength = 200
)

// Validation errors
var (
	ErrInvalidTitle   = errors.New("title is required and must not exceed 200 characters")
	ErrInvalidBody    = errors.New("body is required")
	ErrInvalidOwnerID = errors.New("owner ID is required")
)

// Topic is a discussion thread owned by the user who opened it.
type Topic struct {
	ID        uuid.UUID
	Title     string
	Body      string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTopic creates a topic with validation.
func NewTopic(title, body string, ownerID uuid.UUID) (*Topic, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	if err := validateBody(body); err != nil {
		return nil, err
	}

	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}

	now := time.Now()
	return &Topic{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateContent replaces the topic's title and body with validation.
func (t *Topic) UpdateContent(title, body string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	if err := validateBody(body); err != nil {
		return err
	}

	t.Title = title
	t.Body = body
	t.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy reports whether the acting user owns this topic. Ownership is a
// straight id comparison; there is no role-based override.
func (t *Topic) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerID == userID
}

func validateTitle(title string) error {
	if title == "" || len(title) > MaxTitleLength {
		return ErrInvalidTitle
	}
	return nil
}

func validateBody(body string) error {
	if body == "" {
		return ErrInvalidBody
	}
	return nil
}
