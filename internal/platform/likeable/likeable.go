package likeable

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Kind tags the type of entity a like targets. Likes are generalized over
// kinds so future entity types can become likeable without touching the
// likes context.
type Kind string

const (
	KindPost Kind = "post"
)

// IsValid checks if the kind is a known value
func (k Kind) IsValid() bool {
	switch k {
	case KindPost:
		return true
	default:
		return false
	}
}

// ErrTargetNotFound is returned when the likeable entity does not exist.
var ErrTargetNotFound = errors.New("likeable target not found")

// Source answers questions about one kind of likeable entity. Each bounded
// context that owns a likeable entity registers a Source for its kind.
type Source interface {
	// ResolveAuthor returns the author/owner of the target entity.
	// Returns ErrTargetNotFound if the entity does not exist.
	ResolveAuthor(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// Registry maps likeable kinds to their Sources. The likes service uses it
// to check like policies without importing the owning contexts.
type Registry interface {
	// RegisterSource registers a source for a likeable kind
	RegisterSource(kind Kind, source Source)

	// GetSource retrieves the source for a likeable kind
	GetSource(kind Kind) (Source, bool)

	// ResolveAuthor resolves the author of any registered likeable entity
	ResolveAuthor(ctx context.Context, kind Kind, id uuid.UUID) (uuid.UUID, error)
}
