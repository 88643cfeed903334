package articleservice

import (
	"context"
	"fmt"
	"strings"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// ArticleRepository is the persistence contract of the catalog.
type ArticleRepository interface {
	Save(ctx context.Context, article domain.Article) (domain.Article, error)
	FindByCode(ctx context.Context, code string) (domain.Article, error)
	FindAll(ctx context.Context) ([]domain.Article, error)
	DeleteByCode(ctx context.Context, code string) error
}

// Service owns the article catalog.
type Service struct {
	repo   ArticleRepository
	logger logger.Logger
}

// NewService creates the article service.
func NewService(repo ArticleRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateArticle registers a new catalog entry. The QR payload printed on
// the article's label is derived as "<label>-<code>" and must stay unique.
func (s *Service) CreateArticle(ctx context.Context, creation domain.ArticleCreation) (domain.Article, error) {
	code := strings.TrimSpace(creation.Code)
	label := strings.TrimSpace(creation.Label)

	if code == "" || label == "" {
		return domain.Article{}, apperror.NewValidationError("code and label are both required")
	}

	article := domain.Article{
		Code:      code,
		Label:     label,
		QRPayload: fmt.Sprintf("%s-%s", label, code),
	}

	created, err := s.repo.Save(ctx, article)
	if err != nil {
		return domain.Article{}, err
	}

	s.logger.Info("article registered", map[string]interface{}{"code": created.Code, "label": created.Label})
	return created, nil
}

// ListArticles returns the whole catalog.
func (s *Service) ListArticles(ctx context.Context) ([]domain.Article, error) {
	return s.repo.FindAll(ctx)
}

// GetArticleByCode returns one catalog entry.
func (s *Service) GetArticleByCode(ctx context.Context, code string) (domain.Article, error) {
	if strings.TrimSpace(code) == "" {
		return domain.Article{}, apperror.NewValidationError("article code is required")
	}
	return s.repo.FindByCode(ctx, code)
}

// DeleteArticle removes a catalog entry; its sample and slot rows cascade.
func (s *Service) DeleteArticle(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return apperror.NewValidationError("article code is required")
	}
	return s.repo.DeleteByCode(ctx, code)
}
