package likeable_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugnsma/laranuxt/backend/internal/platform/likeable"
)

type stubSource struct {
	authors map[uuid.UUID]uuid.UUID
}

func (s *stubSource) ResolveAuthor(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	author, ok := s.authors[id]
	if !ok {
		return uuid.Nil, likeable.ErrTargetNotFound
	}
	return author, nil
}

func TestKindIsValid(t *testing.T) {
	assert.True(t, likeable.KindPost.IsValid())
	assert.False(t, likeable.Kind("comment").IsValid())
	assert.False(t, likeable.Kind("").IsValid())
}

func TestRegistryResolveAuthor(t *testing.T) {
	registry := likeable.NewRegistry()

	postID := uuid.New()
	authorID := uuid.New()
	registry.RegisterSource(likeable.KindPost, &stubSource{
		authors: map[uuid.UUID]uuid.UUID{postID: authorID},
	})

	got, err := registry.ResolveAuthor(context.Background(), likeable.KindPost, postID)
	require.NoError(t, err)
	assert.Equal(t, authorID, got)
}

func TestRegistryResolveAuthorTargetMissing(t *testing.T) {
	registry := likeable.NewRegistry()
	registry.RegisterSource(likeable.KindPost, &stubSource{authors: map[uuid.UUID]uuid.UUID{}})

	_, err := registry.ResolveAuthor(context.Background(), likeable.KindPost, uuid.New())
	assert.ErrorIs(t, err, likeable.ErrTargetNotFound)
}

func TestRegistryUnknownKind(t *testing.T) {
	registry := likeable.NewRegistry()

	_, err := registry.ResolveAuthor(context.Background(), likeable.Kind("theme"), uuid.New())
	assert.Error(t, err)
}

func TestRegistryGetSource(t *testing.T) {
	registry := likeable.NewRegistry()

	_, exists := registry.GetSource(likeable.KindPost)
	assert.False(t, exists)

	registry.RegisterSource(likeable.KindPost, &stubSource{})
	source, exists := registry.GetSource(likeable.KindPost)
	assert.True(t, exists)
	assert.NotNil(t, source)
}
