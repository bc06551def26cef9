package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopx/backend/internal/domain/order"
	"github.com/shopx/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReceiptRenderer struct {
	pdf []byte
	err error
}

func (r *stubReceiptRenderer) Render(_ context.Context, _ *order.Order) ([]byte, error) {
	return r.pdf, r.err
}

func TestReceiptService_RenderReceipt_OwnerMayDownload(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	userID := newTestUserID()
	placed := placedOrder(t, userID)

	service := NewReceiptService(mockRepo, &stubReceiptRenderer{pdf: []byte("%PDF-fake")}, zap.NewNop())
	mockRepo.On("FindByID", mock.Anything, placed.ID).Return(placed, nil)

	pdf, err := service.RenderReceipt(context.Background(), placed.ID, userID, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
}

func TestReceiptService_RenderReceipt_StrangerIsForbidden(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	placed := placedOrder(t, newTestUserID())

	service := NewReceiptService(mockRepo, &stubReceiptRenderer{pdf: []byte("%PDF-fake")}, zap.NewNop())
	mockRepo.On("FindByID", mock.Anything, placed.ID).Return(placed, nil)

	_, err := service.RenderReceipt(context.Background(), placed.ID, uuid.New(), false)
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestReceiptService_RenderReceipt_AdminMayDownloadAny(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	placed := placedOrder(t, newTestUserID())

	service := NewReceiptService(mockRepo, &stubReceiptRenderer{pdf: []byte("%PDF-fake")}, zap.NewNop())
	mockRepo.On("FindByID", mock.Anything, placed.ID).Return(placed, nil)

	pdf, err := service.RenderReceipt(context.Background(), placed.ID, uuid.New(), true)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestReceiptService_RenderReceipt_RendererFailure(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	userID := newTestUserID()
	placed := placedOrder(t, userID)

	service := NewReceiptService(mockRepo, &stubReceiptRenderer{err: errors.New("chrome crashed")}, zap.NewNop())
	mockRepo.On("FindByID", mock.Anything, placed.ID).Return(placed, nil)

	_, err := service.RenderReceipt(context.Background(), placed.ID, userID, false)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "RECEIPT_FAILED", domainErr.Code)
}
