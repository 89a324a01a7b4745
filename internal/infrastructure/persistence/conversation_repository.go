package persistence

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormConversationRepository implements messaging.ConversationRepository using GORM
type GormConversationRepository struct {
	db *gorm.DB
}

// NewGormConversationRepository creates a new GormConversationRepository
func NewGormConversationRepository(db *gorm.DB) *GormConversationRepository {
	return &GormConversationRepository{db: db}
}

// FindByID finds a conversation by ID within a user's data
func (r *GormConversationRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*messaging.Conversation, error) {
	var conversation messaging.Conversation
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&conversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

// FindByContractor finds the thread with a contractor on a channel
func (r *GormConversationRepository) FindByContractor(ctx context.Context, userID, contractorID uuid.UUID, channel messaging.ChannelType) (*messaging.Conversation, error) {
	var conversation messaging.Conversation
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND contractor_id = ? AND channel = ?", userID, contractorID, channel).
		First(&conversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

// FindAll lists a user's conversations, most recently active first.
// Threads that never received a message sort last.
func (r *GormConversationRepository) FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]messaging.Conversation, error) {
	page = page.Normalize()
	var conversations []messaging.Conversation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_message_at DESC NULLS LAST, created_at DESC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}

// CountByStatus counts a user's conversations in a triage state
func (r *GormConversationRepository) CountByStatus(ctx context.Context, userID uuid.UUID, status messaging.ConversationStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&messaging.Conversation{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a conversation
func (r *GormConversationRepository) Save(ctx context.Context, conversation *messaging.Conversation) error {
	return r.db.WithContext(ctx).Save(conversation).Error
}

// Delete removes a conversation
func (r *GormConversationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&messaging.Conversation{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ messaging.ConversationRepository = (*GormConversationRepository)(nil)
