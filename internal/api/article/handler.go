package article

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// ArticleService is the contract the handler expects from the service layer.
type ArticleService interface {
	CreateArticle(ctx context.Context, creation domain.ArticleCreation) (domain.Article, error)
	ListArticles(ctx context.Context) ([]domain.Article, error)
	GetArticleByCode(ctx context.Context, code string) (domain.Article, error)
	DeleteArticle(ctx context.Context, code string) error
}

// Handler groups the article catalog endpoints.
type Handler struct {
	Service ArticleService
	Logger  logger.Logger
}

// NewHandler creates the article handler.
func NewHandler(svc ArticleService, log logger.Logger) *Handler {
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

// CreateArticleHandler handles POST /v1/articles.
// @Summary Register an article
// @Tags articles
// @Accept json
// @Produce json
// @Param article body domain.ArticleCreation true "Article code and label"
// @Success 201 {object} domain.Article
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /articles [post]
func (h *Handler) CreateArticleHandler(w http.ResponseWriter, r *http.Request) {
	var creation domain.ArticleCreation
	if err := json.NewDecoder(r.Body).Decode(&creation); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("invalid payload, check the JSON format"), 0)
		return
	}

	created, err := h.Service.CreateArticle(r.Context(), creation)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, created, nil, http.StatusCreated)
}

// ListArticlesHandler handles GET /v1/articles.
func (h *Handler) ListArticlesHandler(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Service.ListArticles(r.Context())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, articles, nil, http.StatusOK)
}

// GetArticleHandler handles GET /v1/articles/{code}.
func (h *Handler) GetArticleHandler(w http.ResponseWriter, r *http.Request) {
	found, err := h.Service.GetArticleByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, found, nil, http.StatusOK)
}

// DeleteArticleHandler handles DELETE /v1/articles/{code}.
func (h *Handler) DeleteArticleHandler(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if err := h.Service.DeleteArticle(r.Context(), code); err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, map[string]string{"message": fmt.Sprintf("article %s deleted", code)}, nil, http.StatusOK)
}
