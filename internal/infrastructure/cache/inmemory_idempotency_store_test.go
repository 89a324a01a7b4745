package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore_MarkProcessed(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()
	ctx := context.Background()

	t.Run("first mark returns true", func(t *testing.T) {
		newlyMarked, err := store.MarkProcessed(ctx, "wamid.abc123", time.Minute)
		require.NoError(t, err)
		assert.True(t, newlyMarked)
	})

	t.Run("second mark returns false", func(t *testing.T) {
		newlyMarked, err := store.MarkProcessed(ctx, "wamid.abc123", time.Minute)
		require.NoError(t, err)
		assert.False(t, newlyMarked)
	})

	t.Run("expired entry can be re-marked", func(t *testing.T) {
		newlyMarked, err := store.MarkProcessed(ctx, "wamid.short", time.Millisecond)
		require.NoError(t, err)
		assert.True(t, newlyMarked)

		time.Sleep(5 * time.Millisecond)

		newlyMarked, err = store.MarkProcessed(ctx, "wamid.short", time.Minute)
		require.NoError(t, err)
		assert.True(t, newlyMarked)
	})
}

func TestInMemoryIdempotencyStore_IsProcessed(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()
	ctx := context.Background()

	processed, err := store.IsProcessed(ctx, "wamid.unknown")
	require.NoError(t, err)
	assert.False(t, processed)

	_, err = store.MarkProcessed(ctx, "wamid.known", time.Minute)
	require.NoError(t, err)

	processed, err = store.IsProcessed(ctx, "wamid.known")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestInMemoryIdempotencyStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
