package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubImageStorage(t *testing.T) {
	ctx := context.Background()
	store := NewStubImageStorage()

	t.Run("store returns a stable URL", func(t *testing.T) {
		url, err := store.Store(ctx, "products/abc.png", []byte("img"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "https://storage.example.com/products/abc.png", url)
	})

	t.Run("store requires a key", func(t *testing.T) {
		_, err := store.Store(ctx, "", nil, "image/png")
		require.Error(t, err)
	})

	t.Run("delete is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "products/abc.png"))
		assert.Error(t, store.Delete(ctx, ""))
	})
}
