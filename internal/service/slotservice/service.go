package slotservice

import (
	"context"
	"errors"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// SlotRepository is the persistence contract the slot registry expects.
type SlotRepository interface {
	Create(ctx context.Context, slot domain.Slot) (domain.Slot, error)
	BulkCreateStorage(ctx context.Context, coords []domain.Coordinates) (int, error)
	FindByCode(ctx context.Context, code string) (domain.Slot, error)
	FindOverflow(ctx context.Context) (domain.Slot, error)
	FindAllSummaries(ctx context.Context) ([]domain.SlotSummary, error)
	Empty(ctx context.Context, code string) ([]string, bool, error)
	DeleteByCode(ctx context.Context, code string) error
	DeleteAllStorage(ctx context.Context) (int, error)
}

// SampleRepository is the slice of the sample store the registry needs for
// the empty-slot cascade.
type SampleRepository interface {
	DeleteOrphans(ctx context.Context, sampleIDs []string) (int, error)
}

// Service owns the slot topology: creation, bulk generation, the reserved
// overflow slot, listing and removal.
type Service struct {
	repo       SlotRepository
	sampleRepo SampleRepository
	logger     logger.Logger
}

// NewService creates the slot registry service.
func NewService(repo SlotRepository, sampleRepo SampleRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, sampleRepo: sampleRepo, logger: logger}
}

// CreateSlot creates a single storage slot at the given coordinates.
func (s *Service) CreateSlot(ctx context.Context, coords domain.Coordinates) (domain.Slot, error) {
	if err := validateCoordinates(coords); err != nil {
		return domain.Slot{}, err
	}
	if coords.Code() == domain.OverflowCode {
		return domain.Slot{}, apperror.NewValidationError("coordinates 99/99/99 are reserved for the overflow slot")
	}

	slot, err := s.repo.Create(ctx, domain.NewSlot(coords, domain.KindStorage))
	if err != nil {
		return domain.Slot{}, err
	}

	s.logger.Info("storage slot created", map[string]interface{}{"code": slot.Code})
	return slot, nil
}

// InitOverflowSlot creates the single reserved overflow slot at its fixed
// coordinates. Fails when one already exists.
func (s *Service) InitOverflowSlot(ctx context.Context) (domain.Slot, error) {
	_, err := s.repo.FindOverflow(ctx)
	if err == nil {
		return domain.Slot{}, apperror.NewConflictError("the overflow slot already exists")
	}
	var notFound *apperror.NotFoundError
	if !errors.As(err, &notFound) {
		return domain.Slot{}, err
	}

	slot, err := s.repo.Create(ctx, domain.NewSlot(domain.OverflowCoordinates(), domain.KindOverflow))
	if err != nil {
		return domain.Slot{}, err
	}

	s.logger.Info("overflow slot initialized", map[string]interface{}{"code": slot.Code})
	return slot, nil
}

// GenerateSlots bulk-creates the full cartesian product of the requested
// aisle/floor/bay ranges. The whole batch is rejected when any resulting
// code already exists. Returns the number of slots created.
func (s *Service) GenerateSlots(ctx context.Context, req domain.GenerateSlotsRequest) (int, error) {
	if req.AisleCount < 1 || req.FloorCount < 1 || req.BayCount < 1 {
		return 0, apperror.NewValidationError("aisle_count, floor_count and bay_count must all be at least 1")
	}
	if req.StartAisle < 1 || req.StartFloor < 1 || req.StartBay < 1 {
		return 0, apperror.NewValidationError("start_aisle, start_floor and start_bay must all be at least 1")
	}
	if req.StartAisle+req.AisleCount-1 > 99 ||
		req.StartFloor+req.FloorCount-1 > 99 ||
		req.StartBay+req.BayCount-1 > 99 {
		return 0, apperror.NewValidationError("coordinates are limited to 99 per axis")
	}

	coords := req.Enumerate()
	for _, c := range coords {
		if c.Code() == domain.OverflowCode {
			return 0, apperror.NewValidationError("the requested range covers 99/99/99, which is reserved for the overflow slot")
		}
	}

	created, err := s.repo.BulkCreateStorage(ctx, coords)
	if err != nil {
		return 0, err
	}

	s.logger.Info("slot generation finished", map[string]interface{}{"created_count": created})
	return created, nil
}

// ListSlots returns all slots ordered by code ascending.
func (s *Service) ListSlots(ctx context.Context) ([]domain.SlotSummary, error) {
	summaries, err := s.repo.FindAllSummaries(ctx)
	if err != nil {
		s.logger.Error("failed to list slots", err)
		return nil, err
	}
	return summaries, nil
}

// GetSlot returns one slot with its contents populated.
func (s *Service) GetSlot(ctx context.Context, code string) (domain.Slot, error) {
	if err := validateCode(code); err != nil {
		return domain.Slot{}, err
	}
	return s.repo.FindByCode(ctx, code)
}

// EmptySlot clears a slot's contents. Already-empty slots succeed as a
// no-op. Samples left without any slot row afterwards are deleted.
func (s *Service) EmptySlot(ctx context.Context, code string) error {
	if err := validateCode(code); err != nil {
		return err
	}

	clearedSamples, wasEmpty, err := s.repo.Empty(ctx, code)
	if err != nil {
		return err
	}
	if wasEmpty {
		s.logger.Debug("slot was already empty", map[string]interface{}{"code": code})
		return nil
	}

	if _, err := s.sampleRepo.DeleteOrphans(ctx, clearedSamples); err != nil {
		// The slot is already cleared; a failed cascade only leaves
		// unreferenced sample rows behind.
		s.logger.Error("orphan cascade failed after emptying slot", err)
		return err
	}

	return nil
}

// DeleteSlot removes a single slot.
func (s *Service) DeleteSlot(ctx context.Context, code string) error {
	if err := validateCode(code); err != nil {
		return err
	}
	return s.repo.DeleteByCode(ctx, code)
}

// DeleteAllStorageSlots removes every storage slot, returning the count.
func (s *Service) DeleteAllStorageSlots(ctx context.Context) (int, error) {
	return s.repo.DeleteAllStorage(ctx)
}

// validateCoordinates checks each axis against the 2-digit range.
func validateCoordinates(coords domain.Coordinates) error {
	for _, v := range []int{coords.Aisle, coords.Floor, coords.Bay} {
		if v < 1 || v > 99 {
			return apperror.NewValidationError("each coordinate must be between 1 and 99")
		}
	}
	return nil
}

// validateCode checks the fixed-width 6-digit slot code shape.
func validateCode(code string) error {
	if len(code) != 6 {
		return apperror.NewValidationError("slot code must be exactly 6 digits")
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return apperror.NewValidationError("slot code must contain only digits")
		}
	}
	return nil
}
