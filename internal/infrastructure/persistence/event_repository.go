package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/artistai/backend/internal/domain/booking"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEventRepository implements booking.EventRepository using GORM
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GormEventRepository
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// FindByID finds an event by ID within a user's data
func (r *GormEventRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*booking.Event, error) {
	var event booking.Event
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// FindAll lists a user's events matching the filter, ordered by event date
func (r *GormEventRepository) FindAll(ctx context.Context, userID uuid.UUID, filter booking.EventFilter, page shared.Page) ([]booking.Event, error) {
	page = page.Normalize()
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.ArtistID != nil {
		query = query.Where("artist_id = ?", *filter.ArtistID)
	}
	if filter.ContractorID != nil {
		query = query.Where("contractor_id = ?", *filter.ContractorID)
	}
	if filter.StartDate != nil {
		query = query.Where("event_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("event_date <= ?", *filter.EndDate)
	}

	var events []booking.Event
	if err := query.
		Order("event_date ASC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// CountUpcoming counts non-cancelled events with a date in [from, to)
func (r *GormEventRepository) CountUpcoming(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&booking.Event{}).
		Where("user_id = ? AND event_date >= ? AND event_date < ? AND status <> ?",
			userID, from, to, booking.EventStatusCancelled).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindUpcoming lists non-cancelled events dated from `from` on, soonest first
func (r *GormEventRepository) FindUpcoming(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]booking.Event, error) {
	var events []booking.Event
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_date >= ? AND status <> ?",
			userID, from, booking.EventStatusCancelled).
		Order("event_date ASC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FindRecentlyCreated lists events created since the given time, newest first
func (r *GormEventRepository) FindRecentlyCreated(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]booking.Event, error) {
	var events []booking.Event
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Save creates or updates an event
func (r *GormEventRepository) Save(ctx context.Context, event *booking.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete removes an event
func (r *GormEventRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&booking.Event{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ booking.EventRepository = (*GormEventRepository)(nil)
