package printing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/order"
)

// receiptTemplate is the HTML layout for order receipts. Prices are
// the locked prices captured at checkout, not current catalog prices.
const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Receipt {{.OrderID}}</title>
<style>
  body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #222; margin: 0; }
  .header { border-bottom: 2px solid #222; padding-bottom: 12px; margin-bottom: 24px; }
  .header h1 { margin: 0; font-size: 22px; }
  .meta { font-size: 12px; color: #666; margin-top: 4px; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; }
  th { text-align: left; border-bottom: 1px solid #999; padding: 6px 4px; }
  td { border-bottom: 1px solid #eee; padding: 6px 4px; }
  .num { text-align: right; }
  .total-row td { border-top: 2px solid #222; border-bottom: none; font-weight: bold; padding-top: 10px; }
  .footer { margin-top: 32px; font-size: 11px; color: #999; }
</style>
</head>
<body>
<div class="header">
  <h1>Order Receipt</h1>
  <div class="meta">Order {{.OrderID}} &middot; placed {{.PlacedAt}}</div>
</div>
<table>
  <thead>
    <tr><th>Product</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Subtotal</th></tr>
  </thead>
  <tbody>
    {{range .Items}}
    <tr>
      <td>{{.Name}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{.UnitPrice}}</td>
      <td class="num">{{.Subtotal}}</td>
    </tr>
    {{end}}
    <tr class="total-row">
      <td colspan="3">Total</td>
      <td class="num">{{.Total}}</td>
    </tr>
  </tbody>
</table>
<div class="footer">Prices shown are those in effect when the items were added to the cart.</div>
</body>
</html>`

type receiptItem struct {
	Name      string
	Quantity  int
	UnitPrice string
	Subtotal  string
}

type receiptData struct {
	OrderID  string
	PlacedAt string
	Total    string
	Items    []receiptItem
}

// ReceiptRenderer produces PDF receipts for placed orders
type ReceiptRenderer struct {
	pdf  PDFRenderer
	tmpl *template.Template
}

// NewReceiptRenderer creates a receipt renderer on top of a PDF backend
func NewReceiptRenderer(pdf PDFRenderer) *ReceiptRenderer {
	return &ReceiptRenderer{
		pdf:  pdf,
		tmpl: template.Must(template.New("receipt").Parse(receiptTemplate)),
	}
}

// RenderHTML produces the receipt HTML for an order
func (r *ReceiptRenderer) RenderHTML(o *order.Order) (string, error) {
	data := receiptData{
		OrderID:  o.ID.String(),
		PlacedAt: o.CreatedAt.Format("2006-01-02 15:04"),
		Total:    o.Total.StringFixed(2),
		Items:    make([]receiptItem, 0, len(o.Items)),
	}

	for i := range o.Items {
		item := &o.Items[i]
		name := item.ProductID.String()
		if item.Product != nil {
			name = item.Product.Name
		}
		data.Items = append(data.Items, receiptItem{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.PriceAtPurchase.StringFixed(2),
			Subtotal:  item.PriceAtPurchase.Mul(quantityDecimal(item.Quantity)).StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render receipt template: %w", err)
	}
	return buf.String(), nil
}

func quantityDecimal(q int) decimal.Decimal {
	return decimal.NewFromInt(int64(q))
}

// Render produces the receipt PDF for an order
func (r *ReceiptRenderer) Render(ctx context.Context, o *order.Order) ([]byte, error) {
	html, err := r.RenderHTML(o)
	if err != nil {
		return nil, err
	}

	result, err := r.pdf.Render(ctx, &RenderRequest{
		HTML:  html,
		Title: "Receipt " + o.ID.String(),
	})
	if err != nil {
		return nil, err
	}
	return result.PDFData, nil
}
