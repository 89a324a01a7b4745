package persistence

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/roster"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormArtistRepository implements roster.ArtistRepository using GORM
type GormArtistRepository struct {
	db *gorm.DB
}

// NewGormArtistRepository creates a new GormArtistRepository
func NewGormArtistRepository(db *gorm.DB) *GormArtistRepository {
	return &GormArtistRepository{db: db}
}

// FindByID finds an artist by ID within a user's data
func (r *GormArtistRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*roster.Artist, error) {
	var artist roster.Artist
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

// FindAll lists a user's artists in insertion order
func (r *GormArtistRepository) FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]roster.Artist, error) {
	page = page.Normalize()
	var artists []roster.Artist
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// CountActive counts the user's active artists
func (r *GormArtistRepository) CountActive(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&roster.Artist{}).
		Where("user_id = ? AND status = ?", userID, roster.ArtistStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an artist
func (r *GormArtistRepository) Save(ctx context.Context, artist *roster.Artist) error {
	return r.db.WithContext(ctx).Save(artist).Error
}

// Delete removes an artist
func (r *GormArtistRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&roster.Artist{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ roster.ArtistRepository = (*GormArtistRepository)(nil)
