package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContractorRepository implements crm.ContractorRepository using GORM
type GormContractorRepository struct {
	db *gorm.DB
}

// NewGormContractorRepository creates a new GormContractorRepository
func NewGormContractorRepository(db *gorm.DB) *GormContractorRepository {
	return &GormContractorRepository{db: db}
}

// FindByID finds a contractor by ID within a user's data
func (r *GormContractorRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*crm.Contractor, error) {
	var contractor crm.Contractor
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&contractor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contractor, nil
}

// FindByPhone finds a contractor by exact phone within a user's data
func (r *GormContractorRepository) FindByPhone(ctx context.Context, userID uuid.UUID, phone string) (*crm.Contractor, error) {
	var contractor crm.Contractor
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND phone = ?", userID, phone).
		First(&contractor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contractor, nil
}

// FindDuplicate scans the user's contractors for a phone or document
// match, excluding excludeID. Phone wins when both collide.
func (r *GormContractorRepository) FindDuplicate(ctx context.Context, userID uuid.UUID, phone string, cpfCnpj *string, excludeID uuid.UUID) (*crm.Contractor, string, error) {
	scoped := func(field, value string) *gorm.DB {
		q := r.db.WithContext(ctx).Where("user_id = ?", userID).Where(field+" = ?", value)
		if excludeID != uuid.Nil {
			q = q.Where("id <> ?", excludeID)
		}
		return q
	}

	if phone != "" {
		var match crm.Contractor
		err := scoped("phone", phone).First(&match).Error
		if err == nil {
			return &match, "phone", nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", err
		}
	}

	if cpfCnpj != nil && *cpfCnpj != "" {
		var match crm.Contractor
		err := scoped("cpf_cnpj", *cpfCnpj).First(&match).Error
		if err == nil {
			return &match, "cpf_cnpj", nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", err
		}
	}

	return nil, "", shared.ErrNotFound
}

// FindAll lists a user's contractors in insertion order
func (r *GormContractorRepository) FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]crm.Contractor, error) {
	page = page.Normalize()
	var contractors []crm.Contractor
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&contractors).Error; err != nil {
		return nil, err
	}
	return contractors, nil
}

// FindRecentlyCreated lists contractors created since the given time, newest first
func (r *GormContractorRepository) FindRecentlyCreated(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]crm.Contractor, error) {
	var contractors []crm.Contractor
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Limit(limit).
		Find(&contractors).Error; err != nil {
		return nil, err
	}
	return contractors, nil
}

// CountByStage counts contractors assigned to a stage (nil for unassigned)
func (r *GormContractorRepository) CountByStage(ctx context.Context, userID uuid.UUID, stageID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&crm.Contractor{}).Where("user_id = ?", userID)
	if stageID == nil {
		query = query.Where("stage_id IS NULL")
	} else {
		query = query.Where("stage_id = ?", *stageID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountInPipeline counts contractors assigned to any stage
func (r *GormContractorRepository) CountInPipeline(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&crm.Contractor{}).
		Where("user_id = ? AND stage_id IS NOT NULL", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a contractor. Unique index violations are
// translated to the matching duplicate conflict.
func (r *GormContractorRepository) Save(ctx context.Context, contractor *crm.Contractor) error {
	err := r.db.WithContext(ctx).Save(contractor).Error
	values := map[string]string{"phone": contractor.Phone}
	if contractor.CpfCnpj != nil {
		values["cpf_cnpj"] = *contractor.CpfCnpj
	}
	return translateUniqueViolation(err, values)
}

// Delete removes a contractor
func (r *GormContractorRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&crm.Contractor{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ crm.ContractorRepository = (*GormContractorRepository)(nil)
