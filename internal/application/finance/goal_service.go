package finance

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// GoalService handles savings goal operations
type GoalService struct {
	goalRepo     finance.GoalRepository
	categoryRepo finance.CategoryRepository
}

// NewGoalService creates a new GoalService
func NewGoalService(
	goalRepo finance.GoalRepository,
	categoryRepo finance.CategoryRepository,
) *GoalService {
	return &GoalService{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new savings goal
func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, req CreateGoalRequest) (*GoalResponse, error) {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, userID, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewRelationshipViolation("Category")
			}
			return nil, err
		}
	}

	goal, err := finance.NewGoal(userID, req.Name, req.TargetAmount)
	if err != nil {
		return nil, err
	}
	goal.TargetDate = req.TargetDate
	goal.CategoryID = req.CategoryID

	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, err
	}

	return ToGoalResponse(goal), nil
}

// GetByID retrieves a single goal
func (s *GoalService) GetByID(ctx context.Context, userID, id uuid.UUID) (*GoalResponse, error) {
	goal, err := s.goalRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToGoalResponse(goal), nil
}

// List retrieves the user's goals, optionally only active ones
func (s *GoalService) List(ctx context.Context, userID uuid.UUID, isActive *bool) ([]GoalResponse, error) {
	goals, err := s.goalRepo.FindAll(ctx, userID, isActive)
	if err != nil {
		return nil, err
	}

	responses := make([]GoalResponse, len(goals))
	for i := range goals {
		responses[i] = *ToGoalResponse(&goals[i])
	}
	return responses, nil
}

// Update applies a partial update to a goal
func (s *GoalService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateGoalRequest) (*GoalResponse, error) {
	goal, err := s.goalRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Goal name cannot be empty")
		}
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Goal target amount must be positive")
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		if req.CurrentAmount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Goal progress cannot be negative")
		}
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}
	if req.IsActive != nil {
		goal.IsActive = *req.IsActive
	}
	goal.Touch()

	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, err
	}

	return ToGoalResponse(goal), nil
}

// Delete removes a goal
func (s *GoalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.goalRepo.Delete(ctx, userID, id)
}
