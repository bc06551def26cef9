package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for cart entries
type Repository interface {
	// FindByUser returns the user's entries with the product
	// projection loaded. An empty cart yields an empty slice, not an
	// error.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Entry, error)
	// FindEntry returns the entry for (user, product), or
	// shared.ErrNotFound when absent.
	FindEntry(ctx context.Context, userID, productID uuid.UUID) (*Entry, error)
	Save(ctx context.Context, entry *Entry) error
	// DeleteEntry removes the entry for (user, product); it reports
	// shared.ErrNotFound when no such entry exists.
	DeleteEntry(ctx context.Context, userID, productID uuid.UUID) error
	// DeleteByUser clears the whole cart for the user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
