package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines read and write operations over completed orders.
// Orders are written once at checkout and never mutated.
type Repository interface {
	// FindByID returns the order with items and product projections
	// loaded, or shared.ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindByUser returns the user's orders, items and product
	// projections loaded, most recent first. Empty history yields an
	// empty slice, not an error.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	// FindAll returns every order in the system, most recent first.
	FindAll(ctx context.Context) ([]Order, error)
	Save(ctx context.Context, o *Order) error
}

// CheckoutRepository performs the atomic cart-to-order conversion.
type CheckoutRepository interface {
	// PlaceOrder reads the user's cart entries under a row lock,
	// builds the order via NewFromCart, persists the order with its
	// items and clears the cart — all in one transaction. Any failure
	// rolls the whole conversion back, leaving cart and orders
	// untouched. An empty cart yields shared.ErrEmptyCart.
	PlaceOrder(ctx context.Context, userID uuid.UUID) (*Order, error)
}
