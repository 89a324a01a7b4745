package messaging

import (
	"context"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ConversationRepository defines the interface for conversation persistence
type ConversationRepository interface {
	// FindByID finds a conversation by ID within a user's data
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Conversation, error)

	// FindByContractor finds the thread with a contractor on a channel
	FindByContractor(ctx context.Context, userID, contractorID uuid.UUID, channel ChannelType) (*Conversation, error)

	// FindAll lists a user's conversations, most recently active first,
	// conversations without messages last.
	FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]Conversation, error)

	// CountByStatus counts a user's conversations in a triage state
	CountByStatus(ctx context.Context, userID uuid.UUID, status ConversationStatus) (int64, error)

	// Save creates or updates a conversation
	Save(ctx context.Context, conversation *Conversation) error

	// Delete removes a conversation; returns shared.ErrNotFound if absent
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// MessageRepository defines the interface for message persistence
type MessageRepository interface {
	// FindByConversation lists a conversation's messages oldest first
	FindByConversation(ctx context.Context, userID, conversationID uuid.UUID, page shared.Page) ([]Message, error)

	// FindByWhatsappMessageID finds a message by its channel-assigned id
	FindByWhatsappMessageID(ctx context.Context, userID uuid.UUID, whatsappMessageID string) (*Message, error)

	// Append stores the message and bumps the conversation's
	// last_message_at in the same transaction.
	Append(ctx context.Context, message *Message) error
}
