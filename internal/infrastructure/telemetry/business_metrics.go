package telemetry

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// ErrMeterNil is returned when business metrics are constructed without a meter
var ErrMeterNil = errors.New("meter must not be nil")

// BusinessMetrics tracks shop activity: registrations, checkouts and
// their value distribution.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	userRegisteredTotal *Counter
	orderPlacedTotal    *Counter
	checkoutFailedTotal *Counter
	orderValue          *Histogram
	orderItemCount      *Histogram
	checkoutDuration    *Histogram
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter  metric.Meter
	Logger *zap.Logger
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:  cfg.Meter,
		logger: logger,
	}

	var err error

	bm.userRegisteredTotal, err = NewCounter(
		cfg.Meter,
		"shop_user_registered_total",
		"Total number of accounts registered",
		"{users}",
	)
	if err != nil {
		return nil, err
	}

	bm.orderPlacedTotal, err = NewCounter(
		cfg.Meter,
		"shop_order_placed_total",
		"Total number of orders placed",
		"{orders}",
	)
	if err != nil {
		return nil, err
	}

	bm.checkoutFailedTotal, err = NewCounter(
		cfg.Meter,
		"shop_checkout_failed_total",
		"Total number of failed checkout attempts",
		"{checkouts}",
	)
	if err != nil {
		return nil, err
	}

	bm.orderValue, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "shop_order_value",
		Description: "Distribution of order totals",
		Unit:        "{currency}",
		Boundaries:  OrderValueBuckets,
	})
	if err != nil {
		return nil, err
	}

	bm.orderItemCount, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "shop_order_item_count",
		Description: "Distribution of distinct products per order",
		Unit:        "{items}",
		Boundaries:  CartSizeBuckets,
	})
	if err != nil {
		return nil, err
	}

	bm.checkoutDuration, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "shop_checkout_duration_seconds",
		Description: "End-to-end checkout duration",
		Unit:        "s",
		Boundaries:  HTTPDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// RecordUserRegistered increments the registration counter
func (bm *BusinessMetrics) RecordUserRegistered(ctx context.Context) {
	bm.userRegisteredTotal.Inc(ctx)
}

// RecordOrderPlaced records a successful checkout
func (bm *BusinessMetrics) RecordOrderPlaced(ctx context.Context, total decimal.Decimal, itemCount int) {
	bm.orderPlacedTotal.Inc(ctx)
	value, _ := total.Float64()
	bm.orderValue.Record(ctx, value)
	bm.orderItemCount.Record(ctx, float64(itemCount))
}

// RecordCheckoutFailed records a failed checkout with its outcome label
func (bm *BusinessMetrics) RecordCheckoutFailed(ctx context.Context, outcome string) {
	bm.checkoutFailedTotal.Inc(ctx, AttrOutcome.String(outcome))
}

// RecordCheckoutDuration records how long the checkout took
func (bm *BusinessMetrics) RecordCheckoutDuration(ctx context.Context, seconds float64) {
	bm.checkoutDuration.Record(ctx, seconds)
}
