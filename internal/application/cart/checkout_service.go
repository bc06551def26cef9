package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopx/backend/internal/domain/order"
	"github.com/shopx/backend/internal/domain/shared"
	"github.com/shopx/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// userLocks serializes checkouts per user. The database transaction
// already guarantees atomicity; the per-user lock on top of it ensures
// that two concurrent checkouts of the same cart resolve to exactly
// one order and one empty-cart error instead of two partial reads
// racing for the row locks.
type userLocks struct {
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

func (l *userLocks) lock(userID uuid.UUID) *sync.Mutex {
	mu, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m
}

// CheckoutService converts carts into orders
type CheckoutService struct {
	checkoutRepo    order.CheckoutRepository
	idempotency     shared.IdempotencyStore
	idemConfig      shared.IdempotencyConfig
	locks           userLocks
	logger          *zap.Logger
	businessMetrics *telemetry.BusinessMetrics
}

// NewCheckoutService creates a new CheckoutService. The idempotency
// store may be nil, in which case Idempotency-Key deduplication is
// disabled.
func NewCheckoutService(
	checkoutRepo order.CheckoutRepository,
	idempotency shared.IdempotencyStore,
	idemConfig shared.IdempotencyConfig,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		checkoutRepo: checkoutRepo,
		idempotency:  idempotency,
		idemConfig:   idemConfig,
		logger:       logger,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *CheckoutService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// PlaceOrder atomically converts the user's cart into an order. The
// cart snapshot is read under a row lock, the order is written with
// its items, and the cart is cleared, all in one transaction; an empty
// cart yields shared.ErrEmptyCart and nothing is written.
//
// When idempotencyKey is non-empty, a repeated key within the
// configured TTL is rejected instead of producing a second order.
// Only a successful checkout consumes the key; a failed attempt may
// be retried with the same key.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, idempotencyKey string) (*OrderResponse, error) {
	mu := s.locks.lock(userID)
	defer mu.Unlock()

	dedupe := idempotencyKey != "" && s.idempotency != nil && s.idemConfig.Enabled
	dedupeKey := userID.String() + ":" + idempotencyKey
	if dedupe {
		processed, err := s.idempotency.IsProcessed(ctx, dedupeKey)
		if err != nil {
			s.logger.Error("Idempotency check failed", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check idempotency key")
		}
		if processed {
			s.logger.Warn("Duplicate checkout request rejected",
				zap.String("user_id", userID.String()),
				zap.String("idempotency_key", idempotencyKey))
			return nil, shared.NewDomainError("DUPLICATE_REQUEST", "This checkout has already been processed")
		}
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "checkout", "place_order",
		attribute.String(telemetry.SpanAttrUserID, userID.String()))
	defer span.End()

	start := time.Now()
	placed, err := s.checkoutRepo.PlaceOrder(ctx, userID)
	if err != nil {
		telemetry.RecordError(span, err)
		if s.businessMetrics != nil {
			s.businessMetrics.RecordCheckoutFailed(ctx, checkoutOutcome(err))
		}
		return nil, err
	}

	// The key is recorded only after the order commits; a failed
	// checkout leaves the key usable for the retry.
	if dedupe {
		if _, err := s.idempotency.MarkProcessed(ctx, dedupeKey, s.idemConfig.TTL); err != nil {
			s.logger.Warn("Failed to record idempotency key after checkout",
				zap.String("user_id", userID.String()),
				zap.String("idempotency_key", idempotencyKey),
				zap.Error(err))
		}
	}

	span.SetAttributes(
		attribute.String(telemetry.SpanAttrOrderID, placed.ID.String()),
		attribute.String(telemetry.SpanAttrTotal, placed.Total.String()),
		attribute.Int(telemetry.SpanAttrItemCount, placed.ItemCount()))
	telemetry.SetOK(span)

	if s.businessMetrics != nil {
		s.businessMetrics.RecordOrderPlaced(ctx, placed.Total, placed.ItemCount())
		s.businessMetrics.RecordCheckoutDuration(ctx, time.Since(start).Seconds())
	}

	s.logger.Info("Order placed",
		zap.String("user_id", userID.String()),
		zap.String("order_id", placed.ID.String()),
		zap.String("total", placed.Total.String()),
		zap.Int("items", placed.ItemCount()))

	response := ToOrderResponse(placed)
	return &response, nil
}

func checkoutOutcome(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return "INTERNAL_ERROR"
}
