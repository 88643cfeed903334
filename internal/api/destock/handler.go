package destock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// DestockService is the contract the handler expects from the service layer.
type DestockService interface {
	Plan(ctx context.Context, req domain.DestockPlanRequest) (domain.DestockPlan, error)
	Confirm(ctx context.Context, confirmation domain.DestockConfirmation) (domain.TransferReceipt, error)
}

// Handler exposes the destocking endpoints.
type Handler struct {
	Service DestockService
	Logger  logger.Logger
}

// NewHandler creates the destock handler.
func NewHandler(svc DestockService, log logger.Logger) *Handler {
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

// PlanHandler handles POST /v1/destock/plan.
// @Summary List the storage slots holding an article's sample
// @Tags destock
// @Accept json
// @Produce json
// @Param request body domain.DestockPlanRequest true "Article identification"
// @Success 200 {object} domain.DestockPlan
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse "Unknown article"
// @Security ApiKeyAuth
// @Router /destock/plan [post]
func (h *Handler) PlanHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.DestockPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("invalid payload, check the JSON format"), 0)
		return
	}

	plan, err := h.Service.Plan(r.Context(), req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, plan, nil, http.StatusOK)
}

// ConfirmHandler handles POST /v1/destock/confirm.
// @Summary Move quantities from storage slots to the overflow slot
// @Tags destock
// @Accept json
// @Produce json
// @Param confirmation body domain.DestockConfirmation true "Transfer lines"
// @Success 200 {object} domain.TransferReceipt
// @Failure 400 {object} domain.ErrorResponse "Validation or quantity failure"
// @Failure 404 {object} domain.ErrorResponse "Unknown source slot"
// @Security ApiKeyAuth
// @Router /destock/confirm [post]
func (h *Handler) ConfirmHandler(w http.ResponseWriter, r *http.Request) {
	var confirmation domain.DestockConfirmation
	if err := json.NewDecoder(r.Body).Decode(&confirmation); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("invalid payload, check the JSON format"), 0)
		return
	}

	receipt, err := h.Service.Confirm(r.Context(), confirmation)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, receipt, nil, http.StatusOK)
}
