package persistence

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBudgetRepository implements finance.BudgetRepository using GORM
type GormBudgetRepository struct {
	db *gorm.DB
}

// NewGormBudgetRepository creates a new GormBudgetRepository
func NewGormBudgetRepository(db *gorm.DB) *GormBudgetRepository {
	return &GormBudgetRepository{db: db}
}

// FindByID finds a budget by ID within a user's data
func (r *GormBudgetRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*finance.Budget, error) {
	var budget finance.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &budget, nil
}

// FindAll lists a user's budgets, optionally filtered by active flag
func (r *GormBudgetRepository) FindAll(ctx context.Context, userID uuid.UUID, isActive *bool) ([]finance.Budget, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var budgets []finance.Budget
	if err := query.Order("created_at ASC").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

// Save creates or updates a budget
func (r *GormBudgetRepository) Save(ctx context.Context, budget *finance.Budget) error {
	return r.db.WithContext(ctx).Save(budget).Error
}

// Delete removes a budget
func (r *GormBudgetRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&finance.Budget{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ finance.BudgetRepository = (*GormBudgetRepository)(nil)
