package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/cart"
	"github.com/shopx/backend/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEntryResponse_ProductProjection(t *testing.T) {
	userID := newTestUserID()
	product := newTestProduct(t, 100)
	product.SetImageURL("https://cdn.example.com/products/laptop.png")

	entry, err := cart.NewEntry(userID, product, 2)
	require.NoError(t, err)
	entry.Product = product

	result := ToEntryResponse(entry)

	assert.Equal(t, "Laptop", result.ProductName)
	assert.Equal(t, "https://cdn.example.com/products/laptop.png", result.ImageURL)
	assert.True(t, result.Subtotal.Equal(decimal.NewFromInt(200)))
}

func TestToEntryResponse_WithoutPreloadedProduct(t *testing.T) {
	entry, err := cart.NewEntry(newTestUserID(), newTestProduct(t, 50), 1)
	require.NoError(t, err)

	result := ToEntryResponse(entry)

	assert.Empty(t, result.ProductName)
	assert.Empty(t, result.ImageURL)
	assert.Equal(t, entry.ProductID, result.ProductID)
}

func TestToOrderResponse_ItemProjection(t *testing.T) {
	userID := newTestUserID()
	product := newTestProduct(t, 100)
	product.SetImageURL("https://cdn.example.com/products/laptop.png")

	entry, err := cart.NewEntry(userID, product, 3)
	require.NoError(t, err)

	placed, err := order.NewFromCart(userID, []cart.Entry{*entry})
	require.NoError(t, err)
	placed.Items[0].Product = product

	result := ToOrderResponse(placed)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Laptop", result.Items[0].ProductName)
	assert.Equal(t, "https://cdn.example.com/products/laptop.png", result.Items[0].ImageURL)
	assert.True(t, result.Items[0].PriceAtPurchase.Equal(decimal.NewFromInt(100)))
}
