package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopx/backend/internal/domain/cart"
	"github.com/shopx/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCartRepository implements cart.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUser returns the user's cart entries with the product
// projection loaded, oldest entry first.
func (r *GormCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]cart.Entry, error) {
	var entries []cart.Entry
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindEntry returns the entry for (user, product)
func (r *GormCartRepository) FindEntry(ctx context.Context, userID, productID uuid.UUID) (*cart.Entry, error) {
	var entry cart.Entry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Save creates or updates a cart entry
func (r *GormCartRepository) Save(ctx context.Context, entry *cart.Entry) error {
	return r.db.WithContext(ctx).Omit("Product").Save(entry).Error
}

// DeleteEntry removes the entry for (user, product)
func (r *GormCartRepository) DeleteEntry(ctx context.Context, userID, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&cart.Entry{}, "user_id = ? AND product_id = ?", userID, productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByUser clears the whole cart for the user
func (r *GormCartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&cart.Entry{}, "user_id = ?", userID).Error
}

var _ cart.Repository = (*GormCartRepository)(nil)
