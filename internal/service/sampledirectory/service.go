package sampledirectory

import (
	"context"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// SampleRepository is the persistence contract of the directory.
type SampleRepository interface {
	ResolveOrCreate(ctx context.Context, articleID, displayName string) (domain.Sample, error)
	FindByArticleID(ctx context.Context, articleID string) (domain.Sample, error)
}

// Service is the sample directory: it maps an article to its single
// canonical sample record, creating it on first use. Idempotency under
// concurrent first use is guaranteed by the storage layer's uniqueness
// constraint on article_id.
type Service struct {
	repo   SampleRepository
	logger logger.Logger
}

// NewService creates the sample directory.
func NewService(repo SampleRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ResolveOrCreate returns the article's sample, creating it when absent.
func (s *Service) ResolveOrCreate(ctx context.Context, articleID, displayName string) (domain.Sample, error) {
	if articleID == "" {
		return domain.Sample{}, apperror.NewValidationError("article id is required")
	}

	sample, err := s.repo.ResolveOrCreate(ctx, articleID, displayName)
	if err != nil {
		s.logger.Error("failed to resolve sample", err)
		return domain.Sample{}, err
	}

	return sample, nil
}
