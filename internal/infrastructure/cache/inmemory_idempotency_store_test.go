package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("first mark wins, second loses", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		first, err := store.MarkProcessed(ctx, "checkout-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, first)

		second, err := store.MarkProcessed(ctx, "checkout-1", time.Minute)
		require.NoError(t, err)
		assert.False(t, second)
	})

	t.Run("expired keys can be re-marked", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		_, err := store.MarkProcessed(ctx, "checkout-2", -time.Second)
		require.NoError(t, err)

		processed, err := store.IsProcessed(ctx, "checkout-2")
		require.NoError(t, err)
		assert.False(t, processed)

		again, err := store.MarkProcessed(ctx, "checkout-2", time.Minute)
		require.NoError(t, err)
		assert.True(t, again)
	})

	t.Run("exactly one concurrent marker wins", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		const workers = 16
		var wg sync.WaitGroup
		var winners int32
		var mu sync.Mutex

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				won, err := store.MarkProcessed(ctx, "checkout-race", time.Minute)
				require.NoError(t, err)
				if won {
					mu.Lock()
					winners++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.EqualValues(t, 1, winners)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		require.NoError(t, store.Close())
		require.NoError(t, store.Close())
	})
}
