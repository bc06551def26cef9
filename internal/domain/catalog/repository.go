package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/shared"
)

// ProductFilter narrows product list queries. All provided predicates
// are combined conjunctively.
type ProductFilter struct {
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	CategoryID *uuid.UUID
	Search     string // case-insensitive substring match on name
	Page       int    // 1-indexed
	PageSize   int
}

// DefaultProductFilter returns a filter with default pagination
func DefaultProductFilter() ProductFilter {
	return ProductFilter{Page: 1, PageSize: 20}
}

// Offset returns the row offset for the filter's page
func (f ProductFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PageSize
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter ProductFilter) (shared.Paginated[Product], error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	Save(ctx context.Context, category *Category) error
	// Delete removes the category and clears the reference on any
	// products that point at it.
	Delete(ctx context.Context, id uuid.UUID) error
}
