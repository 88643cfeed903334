package slot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// SlotService is the contract the handler expects from the service layer.
type SlotService interface {
	CreateSlot(ctx context.Context, coords domain.Coordinates) (domain.Slot, error)
	InitOverflowSlot(ctx context.Context) (domain.Slot, error)
	GenerateSlots(ctx context.Context, req domain.GenerateSlotsRequest) (int, error)
	ListSlots(ctx context.Context) ([]domain.SlotSummary, error)
	GetSlot(ctx context.Context, code string) (domain.Slot, error)
	EmptySlot(ctx context.Context, code string) error
	DeleteSlot(ctx context.Context, code string) error
	DeleteAllStorageSlots(ctx context.Context) (int, error)
}

// Handler groups the slot registry endpoints.
type Handler struct {
	Service SlotService
	Logger  logger.Logger
}

// NewHandler creates the slot handler.
func NewHandler(svc SlotService, log logger.Logger) *Handler {
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
	} else {
		h.Logger.Debug(fmt.Sprintf("request rejected with status %d, category %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// CreateSlotHandler handles POST /v1/slots.
// @Summary Create a storage slot
// @Tags slots
// @Accept json
// @Produce json
// @Param coordinates body domain.Coordinates true "Slot coordinates"
// @Success 201 {object} domain.Slot
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /slots [post]
func (h *Handler) CreateSlotHandler(w http.ResponseWriter, r *http.Request) {
	var coords domain.Coordinates
	if err := json.NewDecoder(r.Body).Decode(&coords); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("invalid payload, check the JSON format"), 0)
		return
	}

	slot, err := h.Service.CreateSlot(r.Context(), coords)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, slot, nil, http.StatusCreated)
}

// InitOverflowSlotHandler handles POST /v1/slots/init-overflow.
// @Summary Initialize the reserved overflow slot
// @Tags slots
// @Produce json
// @Success 201 {object} domain.Slot
// @Failure 409 {object} domain.ErrorResponse "Overflow slot already exists"
// @Security ApiKeyAuth
// @Router /slots/init-overflow [post]
func (h *Handler) InitOverflowSlotHandler(w http.ResponseWriter, r *http.Request) {
	slot, err := h.Service.InitOverflowSlot(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, slot, nil, http.StatusCreated)
}

// GenerateSlotsHandler handles POST /v1/slots/generate.
// @Summary Bulk-generate storage slots over coordinate ranges
// @Tags slots
// @Accept json
// @Produce json
// @Param ranges body domain.GenerateSlotsRequest true "Coordinate ranges"
// @Success 201 {object} map[string]int "created_count"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "A generated code already exists"
// @Security ApiKeyAuth
// @Router /slots/generate [post]
func (h *Handler) GenerateSlotsHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("invalid payload, check the JSON format"), 0)
		return
	}

	created, err := h.Service.GenerateSlots(r.Context(), req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, map[string]int{"created_count": created}, nil, http.StatusCreated)
}

// ListSlotsHandler handles GET /v1/slots.
func (h *Handler) ListSlotsHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.ListSlots(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, summaries, nil, http.StatusOK)
}

// GetSlotHandler handles GET /v1/slots/{code}.
func (h *Handler) GetSlotHandler(w http.ResponseWriter, r *http.Request) {
	slot, err := h.Service.GetSlot(r.Context(), r.PathValue("code"))
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, slot, nil, http.StatusOK)
}

// EmptySlotHandler handles POST /v1/slots/{code}/empty.
func (h *Handler) EmptySlotHandler(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if err := h.Service.EmptySlot(r.Context(), code); err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, map[string]string{"message": fmt.Sprintf("slot %s emptied", code)}, nil, http.StatusOK)
}

// DeleteSlotHandler handles DELETE /v1/slots/{code}.
func (h *Handler) DeleteSlotHandler(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if err := h.Service.DeleteSlot(r.Context(), code); err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, map[string]string{"message": fmt.Sprintf("slot %s deleted", code)}, nil, http.StatusOK)
}

// DeleteAllStorageSlotsHandler handles DELETE /v1/slots/storage.
func (h *Handler) DeleteAllStorageSlotsHandler(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Service.DeleteAllStorageSlots(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, map[string]int{"deleted_count": deleted}, nil, http.StatusOK)
}
