package finance

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BudgetService handles spending budget operations
type BudgetService struct {
	budgetRepo   finance.BudgetRepository
	categoryRepo finance.CategoryRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(
	budgetRepo finance.BudgetRepository,
	categoryRepo finance.CategoryRepository,
) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new spending budget
func (s *BudgetService) Create(ctx context.Context, userID uuid.UUID, req CreateBudgetRequest) (*BudgetResponse, error) {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, userID, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewRelationshipViolation("Category")
			}
			return nil, err
		}
	}

	budget, err := finance.NewBudget(userID, req.Name, req.Amount, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}
	budget.CategoryID = req.CategoryID
	if req.AlertThreshold != nil {
		budget.AlertThreshold = *req.AlertThreshold
	}

	if err := s.budgetRepo.Save(ctx, budget); err != nil {
		return nil, err
	}

	return ToBudgetResponse(budget), nil
}

// GetByID retrieves a single budget
func (s *BudgetService) GetByID(ctx context.Context, userID, id uuid.UUID) (*BudgetResponse, error) {
	budget, err := s.budgetRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToBudgetResponse(budget), nil
}

// List retrieves the user's budgets, optionally only active ones
func (s *BudgetService) List(ctx context.Context, userID uuid.UUID, isActive *bool) ([]BudgetResponse, error) {
	budgets, err := s.budgetRepo.FindAll(ctx, userID, isActive)
	if err != nil {
		return nil, err
	}

	responses := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		responses[i] = *ToBudgetResponse(&budgets[i])
	}
	return responses, nil
}

// Update applies a partial update to a budget
func (s *BudgetService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateBudgetRequest) (*BudgetResponse, error) {
	budget, err := s.budgetRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Budget name cannot be empty")
		}
		budget.Name = *req.Name
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Budget amount must be positive")
		}
		budget.Amount = *req.Amount
	}
	if req.SpentAmount != nil {
		if req.SpentAmount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Spent amount cannot be negative")
		}
		budget.SpentAmount = *req.SpentAmount
	}
	if req.AlertThreshold != nil {
		budget.AlertThreshold = *req.AlertThreshold
	}
	if req.IsActive != nil {
		budget.IsActive = *req.IsActive
	}
	budget.Touch()

	if err := s.budgetRepo.Save(ctx, budget); err != nil {
		return nil, err
	}

	return ToBudgetResponse(budget), nil
}

// Delete removes a budget
func (s *BudgetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.budgetRepo.Delete(ctx, userID, id)
}
