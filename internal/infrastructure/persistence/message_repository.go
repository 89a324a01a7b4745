package persistence

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMessageRepository implements messaging.MessageRepository using GORM
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// FindByConversation lists a conversation's messages oldest first
func (r *GormMessageRepository) FindByConversation(ctx context.Context, userID, conversationID uuid.UUID, page shared.Page) ([]messaging.Message, error) {
	page = page.Normalize()
	var messages []messaging.Message
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("timestamp ASC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// FindByWhatsappMessageID finds a message by its channel-assigned id
func (r *GormMessageRepository) FindByWhatsappMessageID(ctx context.Context, userID uuid.UUID, whatsappMessageID string) (*messaging.Message, error) {
	var message messaging.Message
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND whatsapp_message_id = ?", userID, whatsappMessageID).
		First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

// Append stores the message and bumps the conversation's
// last_message_at in the same transaction.
func (r *GormMessageRepository) Append(ctx context.Context, message *messaging.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&messaging.Conversation{}).
			Where("user_id = ? AND id = ?", message.UserID, message.ConversationID).
			Updates(map[string]interface{}{
				"last_message_at": message.Timestamp,
				"updated_at":      message.Timestamp,
			}).Error
	})
}

var _ messaging.MessageRepository = (*GormMessageRepository)(nil)
