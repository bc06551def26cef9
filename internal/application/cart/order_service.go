package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopx/backend/internal/domain/order"
	"github.com/shopx/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderService reads order history
type OrderService struct {
	orderRepo order.Repository
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.Repository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// GetOwnOrders returns the caller's order history, most recent first.
// A user with no orders gets an empty list, not an error.
func (s *OrderService) GetOwnOrders(ctx context.Context, userID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// GetAllOrders returns every order in the system, most recent first.
// A system with no orders at all yields shared.ErrNotFound.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, shared.ErrNotFound
	}
	return ToOrderResponses(orders), nil
}

// GetOrder returns a single order. Customers may only read their own
// orders; admins may read any.
func (s *OrderService) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.UserID != requesterID && !isAdmin {
		s.logger.Warn("Order access denied",
			zap.String("order_id", orderID.String()),
			zap.String("requester_id", requesterID.String()))
		return nil, shared.ErrForbidden
	}

	response := ToOrderResponse(o)
	return &response, nil
}
