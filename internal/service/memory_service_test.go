package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "savant-seeker/backend/internal/errors"
)

func TestMemoryService(t *testing.T) {
	ctx := context.Background()
	h := setupServices(t)

	assert.Equal(t, []string{}, h.memories.List())

	h.memories.Add(ctx, "  likes tea ")
	h.memories.Add(ctx, "   ")
	got := h.memories.Add(ctx, "has a cat")
	assert.Equal(t, []string{"has a cat", "likes tea"}, got)

	got, err := h.memories.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"has a cat"}, got)

	_, err = h.memories.Delete(ctx, 5)
	assert.ErrorIs(t, err, app_errors.ErrNotFound)

	got = h.memories.Replace(ctx, []string{"a", " ", "b"})
	assert.Equal(t, []string{"a", "b"}, got)

	snap := h.adapter.Load(ctx)
	assert.Equal(t, []string{"a", "b"}, snap.Memories)
}
