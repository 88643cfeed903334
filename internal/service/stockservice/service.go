package stockservice

import (
	"context"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// ArticleRepository is the catalog slice the stocking operation needs:
// lookup by code or by scanned QR payload.
type ArticleRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Article, error)
	FindByQRPayload(ctx context.Context, qrPayload string) (domain.Article, error)
}

// SampleDirectory resolves an article to its one canonical sample record.
type SampleDirectory interface {
	ResolveOrCreate(ctx context.Context, articleID, displayName string) (domain.Sample, error)
}

// SlotRepository is the slice of the slot store the stocking operation
// needs. AddSample runs the capacity check and the merge atomically.
type SlotRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Slot, error)
	AddSample(ctx context.Context, slotCode, sampleID string, quantity int) (domain.Slot, error)
}

// Service implements the stocking operation.
type Service struct {
	articles ArticleRepository
	samples  SampleDirectory
	slots    SlotRepository
	logger   logger.Logger
}

// NewService creates the stocking service.
func NewService(articles ArticleRepository, samples SampleDirectory, slots SlotRepository, logger logger.Logger) *Service {
	return &Service{
		articles: articles,
		samples:  samples,
		slots:    slots,
		logger:   logger,
	}
}

// Stock adds a quantity of an article's sample into a target slot.
// Order of checks: article, quantity, slot, then sample resolution, so a
// stocking attempt against a missing slot never creates a sample row.
func (s *Service) Stock(ctx context.Context, req domain.StockRequest) (domain.StockResult, error) {
	s.logger.Debug("stocking requested", map[string]interface{}{
		"qr_payload":   req.QRPayload,
		"article_code": req.ArticleCode,
		"quantity":     req.Quantity,
		"slot_code":    req.SlotCode,
	})

	// 1. Resolve the article (by QR payload or by catalog code).
	article, err := s.resolveArticle(ctx, req.QRPayload, req.ArticleCode)
	if err != nil {
		return domain.StockResult{}, err
	}

	// 2. Validate the quantity.
	if req.Quantity <= 0 {
		return domain.StockResult{}, apperror.NewValidationError("quantity must be a positive integer")
	}

	// 3. The target slot must exist before any sample is created.
	if _, err := s.slots.FindByCode(ctx, req.SlotCode); err != nil {
		return domain.StockResult{}, err
	}

	// 4. Resolve the article's sample, creating it on first use.
	sample, err := s.samples.ResolveOrCreate(ctx, article.ID, article.Label)
	if err != nil {
		return domain.StockResult{}, err
	}

	// 5. Atomic capacity check + merge + persist.
	slot, err := s.slots.AddSample(ctx, req.SlotCode, sample.ID, req.Quantity)
	if err != nil {
		return domain.StockResult{}, err
	}

	s.logger.Info("sample stocked", map[string]interface{}{
		"article_code": article.Code,
		"sample_id":    sample.ID,
		"slot_code":    slot.Code,
		"quantity":     req.Quantity,
	})

	return domain.StockResult{
		Sample:   sample,
		SlotCode: slot.Code,
		Quantity: req.Quantity,
	}, nil
}

// resolveArticle picks the lookup mode from the populated reference field.
func (s *Service) resolveArticle(ctx context.Context, qrPayload, articleCode string) (domain.Article, error) {
	switch {
	case qrPayload != "":
		return s.articles.FindByQRPayload(ctx, qrPayload)
	case articleCode != "":
		return s.articles.FindByCode(ctx, articleCode)
	default:
		return domain.Article{}, apperror.NewValidationError("either qr_payload or article_code is required")
	}
}
