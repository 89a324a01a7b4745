package persistence

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNoteRepository implements crm.NoteRepository using GORM
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// FindByID finds a note by ID within a user's data
func (r *GormNoteRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*crm.Note, error) {
	var note crm.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// FindByContractor lists a contractor's notes, newest first
func (r *GormNoteRepository) FindByContractor(ctx context.Context, userID, contractorID uuid.UUID, page shared.Page) ([]crm.Note, error) {
	page = page.Normalize()
	var notes []crm.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND contractor_id = ?", userID, contractorID).
		Order("created_at DESC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Save creates or updates a note
func (r *GormNoteRepository) Save(ctx context.Context, note *crm.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

// Delete removes a note
func (r *GormNoteRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&crm.Note{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ crm.NoteRepository = (*GormNoteRepository)(nil)
