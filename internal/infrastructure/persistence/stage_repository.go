package persistence

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStageRepository implements crm.StageRepository using GORM
type GormStageRepository struct {
	db *gorm.DB
}

// NewGormStageRepository creates a new GormStageRepository
func NewGormStageRepository(db *gorm.DB) *GormStageRepository {
	return &GormStageRepository{db: db}
}

// FindByID finds a stage by ID within a user's data
func (r *GormStageRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*crm.PipelineStage, error) {
	var stage crm.PipelineStage
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&stage).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stage, nil
}

// FindAll lists a user's stages ordered by (order, created_at)
func (r *GormStageRepository) FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]crm.PipelineStage, error) {
	page = page.Normalize()
	var stages []crm.PipelineStage
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(`"order" ASC, created_at ASC`).
		Offset(page.Skip).Limit(page.Limit).
		Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

// Save creates or updates a stage
func (r *GormStageRepository) Save(ctx context.Context, stage *crm.PipelineStage) error {
	return r.db.WithContext(ctx).Save(stage).Error
}

// Reorder applies the given (id, order) pairs in one transaction.
// Ids not belonging to the user are skipped.
func (r *GormStageRepository) Reorder(ctx context.Context, userID uuid.UUID, orders []crm.StageOrder) ([]crm.PipelineStage, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range orders {
			if err := tx.Model(&crm.PipelineStage{}).
				Where("user_id = ? AND id = ?", userID, item.ID).
				Update("order", item.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindAll(ctx, userID, shared.DefaultPage())
}

// DeleteWithCleanup nulls the stage reference on dependent contractors
// and removes the stage, all in one transaction.
func (r *GormStageRepository) DeleteWithCleanup(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&crm.Contractor{}).
			Where("user_id = ? AND stage_id = ?", userID, id).
			Update("stage_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&crm.PipelineStage{}, "user_id = ? AND id = ?", userID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

var _ crm.StageRepository = (*GormStageRepository)(nil)
