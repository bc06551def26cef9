package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/cart"
	"github.com/shopx/backend/internal/domain/catalog"
	"github.com/shopx/backend/internal/domain/shared"
)

// Order is the immutable record produced by a checkout. Once created
// it is never mutated or deleted; its total and item prices reflect
// the cart's locked prices at conversion time, not live catalog
// prices.
type Order struct {
	shared.BaseEntity
	UserID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Items  []OrderItem     `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one converted cart line. Quantity and PriceAtPurchase
// are copied verbatim from the cart entry.
type OrderItem struct {
	shared.BaseEntity
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity        int             `gorm:"not null"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(18,4);not null"`

	// Product is loaded by the repository for read projections
	Product *catalog.Product `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewFromCart converts a cart snapshot into an order. The total is
// the sum of quantity times locked price over all entries; live
// product prices are never consulted. An empty snapshot yields
// shared.ErrEmptyCart.
func NewFromCart(userID uuid.UUID, entries []cart.Entry) (*Order, error) {
	if len(entries) == 0 {
		return nil, shared.ErrEmptyCart
	}

	o := &Order{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Total:      decimal.Zero,
		Items:      make([]OrderItem, 0, len(entries)),
	}

	for _, entry := range entries {
		o.Total = o.Total.Add(entry.Subtotal())
		o.Items = append(o.Items, OrderItem{
			BaseEntity:      shared.NewBaseEntity(),
			OrderID:         o.ID,
			ProductID:       entry.ProductID,
			Quantity:        entry.Quantity,
			PriceAtPurchase: entry.LockedPrice,
		})
	}

	return o, nil
}

// ItemCount returns the number of distinct products on the order
func (o *Order) ItemCount() int {
	return len(o.Items)
}
