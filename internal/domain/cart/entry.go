package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/catalog"
	"github.com/shopx/backend/internal/domain/shared"
)

// Entry represents one line of a user's cart: a product, the quantity
// accumulated so far, and the unit price locked at the moment the
// product was first added. Later catalog price changes never touch the
// locked price.
//
// At most one entry exists per (user, product) pair; repeated adds
// increment Quantity instead of creating a second row.
type Entry struct {
	shared.BaseEntity
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product,priority:1"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product,priority:2"`
	Quantity    int             `gorm:"not null"`
	LockedPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`

	// Product is loaded by the repository for read projections
	Product *catalog.Product `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "cart_entries"
}

// NewEntry creates a cart entry, capturing the product's current price
// as the locked unit price.
func NewEntry(userID uuid.UUID, product *catalog.Product, quantity int) (*Entry, error) {
	if product == nil {
		return nil, shared.ErrNotFound
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}

	return &Entry{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		ProductID:   product.ID,
		Quantity:    quantity,
		LockedPrice: product.Price,
	}, nil
}

// AddQuantity accumulates a repeat add into the existing entry.
// The locked price stays as captured at the first add.
func (e *Entry) AddQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}
	e.Quantity += quantity
	e.UpdatedAt = time.Now()
	return nil
}

// Subtotal returns quantity times the locked unit price
func (e *Entry) Subtotal() decimal.Decimal {
	return e.LockedPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}
