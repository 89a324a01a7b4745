package persistence

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGoalRepository implements finance.GoalRepository using GORM
type GormGoalRepository struct {
	db *gorm.DB
}

// NewGormGoalRepository creates a new GormGoalRepository
func NewGormGoalRepository(db *gorm.DB) *GormGoalRepository {
	return &GormGoalRepository{db: db}
}

// FindByID finds a goal by ID within a user's data
func (r *GormGoalRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*finance.Goal, error) {
	var goal finance.Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// FindAll lists a user's goals, optionally filtered by active flag
func (r *GormGoalRepository) FindAll(ctx context.Context, userID uuid.UUID, isActive *bool) ([]finance.Goal, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var goals []finance.Goal
	if err := query.Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// Save creates or updates a goal
func (r *GormGoalRepository) Save(ctx context.Context, goal *finance.Goal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

// Delete removes a goal
func (r *GormGoalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&finance.Goal{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ finance.GoalRepository = (*GormGoalRepository)(nil)
