package persistence

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/channel"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInstanceRepository implements channel.InstanceRepository using GORM
type GormInstanceRepository struct {
	db *gorm.DB
}

// NewGormInstanceRepository creates a new GormInstanceRepository
func NewGormInstanceRepository(db *gorm.DB) *GormInstanceRepository {
	return &GormInstanceRepository{db: db}
}

// FindByUser finds the tenant's instance
func (r *GormInstanceRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*channel.Instance, error) {
	var instance channel.Instance
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&instance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &instance, nil
}

// FindByName finds an instance by its provider-side name
func (r *GormInstanceRepository) FindByName(ctx context.Context, instanceName string) (*channel.Instance, error) {
	var instance channel.Instance
	if err := r.db.WithContext(ctx).
		Where("instance_name = ?", instanceName).
		First(&instance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &instance, nil
}

// Save creates or updates an instance. The unique index on user_id is
// the arbiter when two connects race; the loser surfaces a conflict.
func (r *GormInstanceRepository) Save(ctx context.Context, instance *channel.Instance) error {
	return translateUniqueViolation(r.db.WithContext(ctx).Save(instance).Error, nil)
}

// DeleteByUser removes the tenant's instance if present
func (r *GormInstanceRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&channel.Instance{}, "user_id = ?", userID).Error
}

var _ channel.InstanceRepository = (*GormInstanceRepository)(nil)
