package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopx/backend/internal/domain/cart"
	"github.com/shopx/backend/internal/domain/catalog"
	"github.com/shopx/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CartService handles cart mutations and reads
type CartService struct {
	cartRepo    cart.Repository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(
	cartRepo cart.Repository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddItem puts a product into the user's cart. A repeat add of the
// same product accumulates quantity into the existing entry and keeps
// the originally locked price; only the first add captures the
// catalog price.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	if req.Quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindEntry(ctx, userID, req.ProductID)
	switch {
	case err == nil:
		if err := existing.AddQuantity(req.Quantity); err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		entry, err := cart.NewEntry(userID, product, req.Quantity)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, entry); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.logger.Info("Cart item added",
		zap.String("user_id", userID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.Int("quantity", req.Quantity))

	return s.ListItems(ctx, userID)
}

// ListItems returns the user's cart. An empty cart is a successful
// response with no items, never an error.
func (s *CartService) ListItems(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	entries, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToCartResponse(entries)
	return &response, nil
}

// RemoveItem deletes the whole entry for the product regardless of
// its accumulated quantity. Removing a product that is not in the
// cart yields shared.ErrNotFound.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartResponse, error) {
	if err := s.cartRepo.DeleteEntry(ctx, userID, productID); err != nil {
		return nil, err
	}

	s.logger.Info("Cart item removed",
		zap.String("user_id", userID.String()),
		zap.String("product_id", productID.String()))

	return s.ListItems(ctx, userID)
}
