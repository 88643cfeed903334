package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// StockService is the contract the handler expects from the service layer.
type StockService interface {
	Stock(ctx context.Context, req domain.StockRequest) (domain.StockResult, error)
}

// Handler exposes the stocking endpoint.
type Handler struct {
	Service StockService
	Logger  logger.Logger
}

// NewHandler creates the stock handler.
func NewHandler(svc StockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse maps service errors to standardized API responses.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("failed to encode response JSON", jsonErr)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("server error: %s", category), err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// StockHandler handles POST /v1/samples/stock.
// @Summary Stock units of an article's sample into a slot
// @Tags stock
// @Accept json
// @Produce json
// @Param request body domain.StockRequest true "Stock request"
// @Success 201 {object} domain.StockResult
// @Failure 400 {object} domain.ErrorResponse "Validation or capacity failure"
// @Failure 404 {object} domain.ErrorResponse "Unknown article or slot"
// @Security ApiKeyAuth
// @Router /samples/stock [post]
func (h *Handler) StockHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("invalid payload, check the JSON format"), 0)
		return
	}

	result, err := h.Service.Stock(r.Context(), req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, result, nil, http.StatusCreated)
}
