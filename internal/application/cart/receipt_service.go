package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopx/backend/internal/domain/order"
	"github.com/shopx/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReceiptRenderer turns a placed order into a PDF document
type ReceiptRenderer interface {
	Render(ctx context.Context, o *order.Order) ([]byte, error)
}

// ReceiptService produces downloadable receipts for placed orders
type ReceiptService struct {
	orderRepo order.Repository
	renderer  ReceiptRenderer
	logger    *zap.Logger
}

// NewReceiptService creates a new receipt service
func NewReceiptService(orderRepo order.Repository, renderer ReceiptRenderer, logger *zap.Logger) *ReceiptService {
	return &ReceiptService{
		orderRepo: orderRepo,
		renderer:  renderer,
		logger:    logger,
	}
}

// RenderReceipt renders the PDF receipt for an order. Only the order's
// owner or an administrator may request it.
func (s *ReceiptService) RenderReceipt(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) ([]byte, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.UserID != requesterID && !isAdmin {
		return nil, shared.ErrForbidden
	}

	pdf, err := s.renderer.Render(ctx, o)
	if err != nil {
		s.logger.Error("Failed to render order receipt",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("RECEIPT_FAILED", "Could not render the receipt")
	}

	s.logger.Info("Order receipt rendered",
		zap.String("order_id", orderID.String()),
		zap.Int("bytes", len(pdf)))
	return pdf, nil
}
