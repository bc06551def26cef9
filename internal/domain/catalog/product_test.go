package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Keyboard", "mechanical, 87 keys", decimal.RequireFromString("59.99"), 25)
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Keyboard", product.Name)
		assert.Equal(t, "mechanical, 87 keys", product.Description)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("59.99")))
		assert.Equal(t, 25, product.Stock)
		assert.Nil(t, product.CategoryID)
		assert.Empty(t, product.ImageURL)
		assert.NotEmpty(t, product.ID)
	})

	t.Run("allows zero price and zero stock", func(t *testing.T) {
		product, err := NewProduct("Freebie", "", decimal.Zero, 0)
		require.NoError(t, err)
		assert.True(t, product.Price.IsZero())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("  ", "", decimal.Zero, 0)
		require.Error(t, err)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Keyboard", "", decimal.RequireFromString("-1"), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("fails with negative stock", func(t *testing.T) {
		_, err := NewProduct("Keyboard", "", decimal.Zero, -1)
		require.Error(t, err)
	})
}

func TestProductUpdate(t *testing.T) {
	product, err := NewProduct("Keyboard", "old", decimal.RequireFromString("10"), 5)
	require.NoError(t, err)

	t.Run("updates mutable attributes", func(t *testing.T) {
		err := product.Update("Keyboard Pro", "new", decimal.RequireFromString("15"), 8)
		require.NoError(t, err)
		assert.Equal(t, "Keyboard Pro", product.Name)
		assert.Equal(t, 8, product.Stock)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		err := product.Update("Keyboard Pro", "new", decimal.RequireFromString("-5"), 8)
		require.Error(t, err)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("15")))
	})
}

func TestProductCategory(t *testing.T) {
	product, err := NewProduct("Keyboard", "", decimal.Zero, 0)
	require.NoError(t, err)

	categoryID := uuid.New()
	product.AssignCategory(categoryID)
	require.NotNil(t, product.CategoryID)
	assert.Equal(t, categoryID, *product.CategoryID)

	product.ClearCategory()
	assert.Nil(t, product.CategoryID)
}
