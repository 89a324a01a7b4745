package crm

import (
	"context"

	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StageService handles pipeline stage operations
type StageService struct {
	stageRepo      crm.StageRepository
	contractorRepo crm.ContractorRepository
}

// NewStageService creates a new StageService
func NewStageService(
	stageRepo crm.StageRepository,
	contractorRepo crm.ContractorRepository,
) *StageService {
	return &StageService{
		stageRepo:      stageRepo,
		contractorRepo: contractorRepo,
	}
}

// Create creates a new pipeline stage
func (s *StageService) Create(ctx context.Context, userID uuid.UUID, req CreateStageRequest) (*StageResponse, error) {
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	stage, err := crm.NewPipelineStage(userID, req.Name, order)
	if err != nil {
		return nil, err
	}

	if err := s.stageRepo.Save(ctx, stage); err != nil {
		return nil, err
	}

	return ToStageResponse(stage, 0), nil
}

// GetByID retrieves a stage with its contractor count
func (s *StageService) GetByID(ctx context.Context, userID, id uuid.UUID) (*StageResponse, error) {
	stage, err := s.stageRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	count, err := s.contractorRepo.CountByStage(ctx, userID, &stage.ID)
	if err != nil {
		return nil, err
	}

	return ToStageResponse(stage, count), nil
}

// List retrieves the user's stages in funnel order with contractor counts
func (s *StageService) List(ctx context.Context, userID uuid.UUID, page shared.Page) ([]StageResponse, error) {
	stages, err := s.stageRepo.FindAll(ctx, userID, page.Normalize())
	if err != nil {
		return nil, err
	}

	responses := make([]StageResponse, len(stages))
	for i := range stages {
		count, err := s.contractorRepo.CountByStage(ctx, userID, &stages[i].ID)
		if err != nil {
			return nil, err
		}
		responses[i] = *ToStageResponse(&stages[i], count)
	}
	return responses, nil
}

// Update applies a partial update to a stage
func (s *StageService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateStageRequest) (*StageResponse, error) {
	stage, err := s.stageRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Stage name cannot be empty")
		}
		stage.Name = *req.Name
		stage.Touch()
	}
	if req.Order != nil {
		stage.Order = *req.Order
		stage.Touch()
	}

	if err := s.stageRepo.Save(ctx, stage); err != nil {
		return nil, err
	}

	count, err := s.contractorRepo.CountByStage(ctx, userID, &stage.ID)
	if err != nil {
		return nil, err
	}

	return ToStageResponse(stage, count), nil
}

// Reorder applies a bulk ordering change in one transaction. Ids that
// do not belong to the user are skipped.
func (s *StageService) Reorder(ctx context.Context, userID uuid.UUID, req ReorderStagesRequest) ([]StageResponse, error) {
	orders := make([]crm.StageOrder, len(req.Stages))
	for i, item := range req.Stages {
		orders[i] = crm.StageOrder{ID: item.ID, Order: item.Order}
	}

	stages, err := s.stageRepo.Reorder(ctx, userID, orders)
	if err != nil {
		return nil, err
	}

	responses := make([]StageResponse, len(stages))
	for i := range stages {
		count, err := s.contractorRepo.CountByStage(ctx, userID, &stages[i].ID)
		if err != nil {
			return nil, err
		}
		responses[i] = *ToStageResponse(&stages[i], count)
	}
	return responses, nil
}

// Delete removes a stage, pulling its contractors out of the pipeline
// rather than deleting them.
func (s *StageService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.stageRepo.DeleteWithCleanup(ctx, userID, id)
}
