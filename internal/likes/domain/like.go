package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ugnsma/laranuxt/backend/internal/platform/likeable"
)

var (
	ErrInvalidUserID   = errors.New("user ID is required")
	ErrInvalidTargetID = errors.New("likeable ID is required")
	ErrInvalidKind     = errors.New("invalid likeable kind")
)

// Like records that one user liked one likeable entity. The target is a
// tagged variant of kind plus id so other entity types can become likeable
// later. At most one like exists per (user, kind, id).
type Like struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	LikeableKind likeable.Kind
	LikeableID   uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewLike creates a like with validation.
func NewLike(userID uuid.UUID, kind likeable.Kind, targetID uuid.UUID) (*Like, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	if targetID == uuid.Nil {
		return nil, ErrInvalidTargetID
	}

	now := time.Now()
	return &Like{
		ID:           uuid.New(),
		UserID:       userID,
		LikeableKind: kind,
		LikeableID:   targetID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Targets reports whether the like points at the given likeable entity.
func (l *Like) Targets(kind likeable.Kind, targetID uuid.UUID) bool {
	return l.LikeableKind == kind && l.LikeableID == targetID
}

// CanLike is the like policy: a user may like anything they did not author.
// Duplicate detection is the storage layer's concern.
func CanLike(actorID, authorID uuid.UUID) bool {
	return actorID != authorID
}
