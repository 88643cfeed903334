package stock_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"texstock/internal/api/stock"
	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) Stock(ctx context.Context, req domain.StockRequest) (domain.StockResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.StockResult), args.Error(1)
}

func TestStockHandler_RespondsCreated(t *testing.T) {
	mockSvc := new(MockStockService)
	handler := stock.NewHandler(mockSvc, logger.NewLogger("error"))

	result := domain.StockResult{
		Sample:   domain.Sample{ID: uuid.New().String()},
		SlotCode: "010101",
		Quantity: 5,
	}
	mockSvc.On("Stock", mock.Anything, domain.StockRequest{QRPayload: "Blue denim-TX100", Quantity: 5, SlotCode: "010101"}).
		Return(result, nil)

	body := strings.NewReader(`{"qr_payload":"Blue denim-TX100","quantity":5,"slot_code":"010101"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/samples/stock", body)
	rec := httptest.NewRecorder()

	handler.StockHandler(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "010101")
	mockSvc.AssertExpectations(t)
}

func TestStockHandler_MapsCapacityExceededToBadRequest(t *testing.T) {
	mockSvc := new(MockStockService)
	handler := stock.NewHandler(mockSvc, logger.NewLogger("error"))

	mockSvc.On("Stock", mock.Anything, mock.Anything).
		Return(domain.StockResult{}, apperror.NewCapacityExceededError("slot 010101 holds 28 unit(s), adding 5 exceeds the capacity of 30"))

	body := strings.NewReader(`{"article_code":"TX100","quantity":5,"slot_code":"010101"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/samples/stock", body)
	rec := httptest.NewRecorder()

	handler.StockHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apperror.CategoryCapacityExceeded)
}

func TestStockHandler_RejectsMalformedJSON(t *testing.T) {
	mockSvc := new(MockStockService)
	handler := stock.NewHandler(mockSvc, logger.NewLogger("error"))

	req := httptest.NewRequest(http.MethodPost, "/v1/samples/stock", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	handler.StockHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockSvc.AssertNotCalled(t, "Stock")
}
