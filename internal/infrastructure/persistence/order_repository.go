package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopx/backend/internal/domain/cart"
	"github.com/shopx/backend/internal/domain/order"
	"github.com/shopx/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements order.Repository and
// order.CheckoutRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID returns the order with items and product projections loaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByUser returns the user's orders, most recent first
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll returns every order in the system, most recent first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save persists the order and its items in one transaction
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(o).Error; err != nil {
			return err
		}
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
			if err := tx.Omit("Product").Save(&o.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// PlaceOrder atomically converts the user's cart into an order.
//
// The cart rows are read under SELECT ... FOR UPDATE so a second
// checkout for the same user blocks until this transaction commits and
// then sees an empty cart. Creating the order, creating its items and
// clearing the cart all happen in the same transaction; any failure
// rolls the whole conversion back.
func (r *GormOrderRepository) PlaceOrder(ctx context.Context, userID uuid.UUID) (*order.Order, error) {
	var placed *order.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entries []cart.Entry
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			Order("created_at ASC").
			Find(&entries).Error; err != nil {
			return err
		}

		o, err := order.NewFromCart(userID, entries)
		if err != nil {
			return err
		}

		if err := tx.Omit("Items").Create(o).Error; err != nil {
			return err
		}
		for i := range o.Items {
			if err := tx.Omit("Product").Create(&o.Items[i]).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&cart.Entry{}, "user_id = ?", userID).Error; err != nil {
			return err
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

var (
	_ order.Repository         = (*GormOrderRepository)(nil)
	_ order.CheckoutRepository = (*GormOrderRepository)(nil)
)
