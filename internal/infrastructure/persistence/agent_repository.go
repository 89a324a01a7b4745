package persistence

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/agent"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAgentConfigRepository implements agent.ConfigRepository using GORM
type GormAgentConfigRepository struct {
	db *gorm.DB
}

// NewGormAgentConfigRepository creates a new GormAgentConfigRepository
func NewGormAgentConfigRepository(db *gorm.DB) *GormAgentConfigRepository {
	return &GormAgentConfigRepository{db: db}
}

// FindByUser finds the tenant's agent config
func (r *GormAgentConfigRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*agent.Config, error) {
	var config agent.Config
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &config, nil
}

// Save creates or updates a config
func (r *GormAgentConfigRepository) Save(ctx context.Context, config *agent.Config) error {
	return r.db.WithContext(ctx).Save(config).Error
}

var _ agent.ConfigRepository = (*GormAgentConfigRepository)(nil)

// GormPromptVersionRepository implements agent.PromptVersionRepository using GORM
type GormPromptVersionRepository struct {
	db *gorm.DB
}

// NewGormPromptVersionRepository creates a new GormPromptVersionRepository
func NewGormPromptVersionRepository(db *gorm.DB) *GormPromptVersionRepository {
	return &GormPromptVersionRepository{db: db}
}

// FindByID finds a version belonging to the given config
func (r *GormPromptVersionRepository) FindByID(ctx context.Context, agentConfigID, id uuid.UUID) (*agent.PromptVersion, error) {
	var version agent.PromptVersion
	if err := r.db.WithContext(ctx).
		Where("agent_config_id = ? AND id = ?", agentConfigID, id).
		First(&version).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &version, nil
}

// FindByConfig lists a config's versions, newest first
func (r *GormPromptVersionRepository) FindByConfig(ctx context.Context, agentConfigID uuid.UUID, page shared.Page) ([]agent.PromptVersion, error) {
	page = page.Normalize()
	var versions []agent.PromptVersion
	if err := r.db.WithContext(ctx).
		Where("agent_config_id = ?", agentConfigID).
		Order("version DESC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

// LatestVersionNumber returns the highest version number for the config
func (r *GormPromptVersionRepository) LatestVersionNumber(ctx context.Context, agentConfigID uuid.UUID) (int, error) {
	var latest agent.PromptVersion
	err := r.db.WithContext(ctx).
		Where("agent_config_id = ?", agentConfigID).
		Order("version DESC").
		First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return latest.Version, nil
}

// Save stores a new version snapshot
func (r *GormPromptVersionRepository) Save(ctx context.Context, version *agent.PromptVersion) error {
	return r.db.WithContext(ctx).Save(version).Error
}

var _ agent.PromptVersionRepository = (*GormPromptVersionRepository)(nil)
