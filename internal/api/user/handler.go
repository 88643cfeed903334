package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// UserService is the contract the handler expects from the service layer.
type UserService interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUserRole(ctx context.Context, id string, role string) (domain.User, error)
}

// Handler groups the authentication and user administration endpoints.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

// NewHandler creates the user handler.
func NewHandler(svc UserService, log logger.Logger) *Handler {
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

// LoginHandler handles POST /v1/auth/login.
// @Summary Authenticate and obtain a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.UserLogin true "Email and password"
// @Success 200 {object} map[string]string "token"
// @Failure 401 {object} domain.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var login domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("invalid payload, check the JSON format"), 0)
		return
	}

	token, err := h.Service.Login(r.Context(), login.Email, login.Password)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, map[string]string{"token": token}, nil, http.StatusOK)
}

// ListUsersHandler handles GET /v1/users.
func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, users, nil, http.StatusOK)
}

// UpdateUserRoleHandler handles PATCH /v1/users/{id}.
func (h *Handler) UpdateUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	var update domain.UserRoleUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("invalid payload, check the JSON format"), 0)
		return
	}

	updated, err := h.Service.UpdateUserRole(r.Context(), r.PathValue("id"), update.Role)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, updated, nil, http.StatusOK)
}
