package likeable

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// DefaultRegistry is the default implementation of Registry
type DefaultRegistry struct {
	sources map[Kind]Source
	mu      sync.RWMutex
}

// NewRegistry creates a new likeable registry
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		sources: make(map[Kind]Source),
	}
}

// RegisterSource registers a source for a likeable kind
func (r *DefaultRegistry) RegisterSource(kind Kind, source Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[kind] = source
}

// GetSource retrieves the source for a likeable kind
func (r *DefaultRegistry) GetSource(kind Kind) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	source, exists := r.sources[kind]
	return source, exists
}

// ResolveAuthor resolves the author of any registered likeable entity
func (r *DefaultRegistry) ResolveAuthor(ctx context.Context, kind Kind, id uuid.UUID) (uuid.UUID, error) {
	source, exists := r.GetSource(kind)
	if !exists {
		return uuid.Nil, fmt.Errorf("no likeable source registered for kind: %s", kind)
	}

	return source.ResolveAuthor(ctx, id)
}
