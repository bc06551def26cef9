package printing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/cart"
	"github.com/shopx/backend/internal/domain/catalog"
	"github.com/shopx/backend/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePDFRenderer struct {
	lastRequest *RenderRequest
}

func (f *fakePDFRenderer) Render(_ context.Context, req *RenderRequest) (*RenderResult, error) {
	f.lastRequest = req
	return &RenderResult{PDFData: []byte("%PDF-fake")}, nil
}

func (f *fakePDFRenderer) Close() error { return nil }

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	userID := uuid.New()
	product, err := catalog.NewProduct("Mechanical Keyboard", "", decimal.NewFromFloat(79.90), 5)
	require.NoError(t, err)
	entry, err := cart.NewEntry(userID, product, 2)
	require.NoError(t, err)
	placed, err := order.NewFromCart(userID, []cart.Entry{*entry})
	require.NoError(t, err)
	placed.Items[0].Product = product
	return placed
}

func TestReceiptRenderer_RenderHTML(t *testing.T) {
	renderer := NewReceiptRenderer(&fakePDFRenderer{})
	placed := testOrder(t)

	html, err := renderer.RenderHTML(placed)
	require.NoError(t, err)

	assert.Contains(t, html, placed.ID.String())
	assert.Contains(t, html, "Mechanical Keyboard")
	assert.Contains(t, html, "79.90")
	assert.Contains(t, html, "159.80")
}

func TestReceiptRenderer_FallsBackToProductID(t *testing.T) {
	renderer := NewReceiptRenderer(&fakePDFRenderer{})
	placed := testOrder(t)
	placed.Items[0].Product = nil

	html, err := renderer.RenderHTML(placed)
	require.NoError(t, err)
	assert.Contains(t, html, placed.Items[0].ProductID.String())
}

func TestReceiptRenderer_Render(t *testing.T) {
	backend := &fakePDFRenderer{}
	renderer := NewReceiptRenderer(backend)
	placed := testOrder(t)

	pdf, err := renderer.Render(context.Background(), placed)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdf)
	require.NotNil(t, backend.lastRequest)
	assert.Contains(t, backend.lastRequest.Title, placed.ID.String())
}
