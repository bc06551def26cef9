package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, price string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("Keyboard", "mechanical", decimal.RequireFromString(price), 10)
	require.NoError(t, err)
	return p
}

func TestNewEntry(t *testing.T) {
	userID := uuid.New()

	t.Run("locks the product's current price", func(t *testing.T) {
		product := testProduct(t, "100")

		entry, err := NewEntry(userID, product, 2)
		require.NoError(t, err)

		assert.Equal(t, userID, entry.UserID)
		assert.Equal(t, product.ID, entry.ProductID)
		assert.Equal(t, 2, entry.Quantity)
		assert.True(t, entry.LockedPrice.Equal(decimal.RequireFromString("100")))
	})

	t.Run("locked price survives a later catalog price change", func(t *testing.T) {
		product := testProduct(t, "100")

		entry, err := NewEntry(userID, product, 1)
		require.NoError(t, err)

		require.NoError(t, product.Update(product.Name, product.Description, decimal.RequireFromString("250"), product.Stock))

		assert.True(t, entry.LockedPrice.Equal(decimal.RequireFromString("100")))
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		_, err := NewEntry(userID, testProduct(t, "100"), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})

	t.Run("fails with negative quantity", func(t *testing.T) {
		_, err := NewEntry(userID, testProduct(t, "100"), -3)
		require.Error(t, err)
	})

	t.Run("fails with nil product", func(t *testing.T) {
		_, err := NewEntry(userID, nil, 1)
		require.Error(t, err)
	})
}

func TestEntryAddQuantity(t *testing.T) {
	userID := uuid.New()

	t.Run("accumulates quantity and keeps the locked price", func(t *testing.T) {
		product := testProduct(t, "100")
		entry, err := NewEntry(userID, product, 2)
		require.NoError(t, err)

		// Catalog price moves between the two adds
		require.NoError(t, product.Update(product.Name, product.Description, decimal.RequireFromString("150"), product.Stock))

		require.NoError(t, entry.AddQuantity(3))

		assert.Equal(t, 5, entry.Quantity)
		assert.True(t, entry.LockedPrice.Equal(decimal.RequireFromString("100")))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		entry, err := NewEntry(userID, testProduct(t, "100"), 2)
		require.NoError(t, err)

		require.Error(t, entry.AddQuantity(0))
		require.Error(t, entry.AddQuantity(-1))
		assert.Equal(t, 2, entry.Quantity)
	})
}

func TestEntrySubtotal(t *testing.T) {
	entry, err := NewEntry(uuid.New(), testProduct(t, "19.99"), 3)
	require.NoError(t, err)

	assert.True(t, entry.Subtotal().Equal(decimal.RequireFromString("59.97")))
}
