package destockservice

import (
	"context"
	"errors"
	"fmt"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// ArticleRepository is the catalog slice the planner needs.
type ArticleRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Article, error)
	FindByQRPayload(ctx context.Context, qrPayload string) (domain.Article, error)
}

// SampleRepository resolves the article's sample for planning.
type SampleRepository interface {
	FindByArticleID(ctx context.Context, articleID string) (domain.Sample, error)
}

// SlotRepository is the slice of the slot store the destock protocol needs.
// Transfer is all-or-nothing: it either applies every line or none.
type SlotRepository interface {
	FindStorageBySample(ctx context.Context, sampleID string) ([]domain.PlanSlot, error)
	Transfer(ctx context.Context, lines []domain.DestockLine) (domain.TransferReceipt, error)
}

// Service implements the two-phase destock protocol: a read-only plan
// followed by an atomic multi-line transfer into the overflow slot.
type Service struct {
	articles ArticleRepository
	samples  SampleRepository
	slots    SlotRepository
	logger   logger.Logger
}

// NewService creates the destock service.
func NewService(articles ArticleRepository, samples SampleRepository, slots SlotRepository, logger logger.Logger) *Service {
	return &Service{
		articles: articles,
		samples:  samples,
		slots:    slots,
		logger:   logger,
	}
}

// Plan reports which storage slots hold the article's sample and how much
// each makes available. Nothing is mutated; the operator chooses per-slot
// quantities from this snapshot before confirming.
func (s *Service) Plan(ctx context.Context, req domain.DestockPlanRequest) (domain.DestockPlan, error) {
	article, err := s.resolveArticle(ctx, req.QRPayload, req.ArticleCode)
	if err != nil {
		return domain.DestockPlan{}, err
	}

	plan := domain.DestockPlan{ArticleID: article.ID, Slots: []domain.PlanSlot{}}

	sample, err := s.samples.FindByArticleID(ctx, article.ID)
	if err != nil {
		// An article that was never stocked has no sample yet; the plan is
		// simply empty.
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			return plan, nil
		}
		return domain.DestockPlan{}, err
	}

	slots, err := s.slots.FindStorageBySample(ctx, sample.ID)
	if err != nil {
		return domain.DestockPlan{}, err
	}

	plan.Slots = slots
	s.logger.Debug("destock plan built", map[string]interface{}{
		"article_code": article.Code,
		"slot_count":   len(slots),
	})
	return plan, nil
}

// Confirm commits a set of transfer lines. All lines are validated up
// front, then the repository applies the whole set in one transaction; a
// mid-sequence failure leaves every slot, overflow included, unchanged.
func (s *Service) Confirm(ctx context.Context, confirmation domain.DestockConfirmation) (domain.TransferReceipt, error) {
	if len(confirmation.Lines) == 0 {
		return domain.TransferReceipt{}, apperror.NewValidationError("at least one destock line is required")
	}

	for i, line := range confirmation.Lines {
		if line.SlotCode == "" || line.SampleID == "" {
			return domain.TransferReceipt{}, apperror.NewValidationError(fmt.Sprintf("line %d: slot_code and sample_id are required", i+1))
		}
		if line.SlotCode == domain.OverflowCode {
			return domain.TransferReceipt{}, apperror.NewValidationError(fmt.Sprintf("line %d: the overflow slot cannot be a destock source", i+1))
		}
		if line.Quantity <= 0 {
			return domain.TransferReceipt{}, apperror.NewValidationError(fmt.Sprintf("line %d: quantity must be a positive integer", i+1))
		}
	}

	receipt, err := s.slots.Transfer(ctx, confirmation.Lines)
	if err != nil {
		s.logger.Error("destock transfer failed", err)
		return domain.TransferReceipt{}, err
	}

	s.logger.Info("destock transfer confirmed", map[string]interface{}{
		"moved_quantity": receipt.MovedQuantity,
		"slot_codes":     receipt.SlotCodes,
	})
	return receipt, nil
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
