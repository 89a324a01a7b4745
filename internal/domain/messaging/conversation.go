package messaging

import (
	"time"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ChannelType identifies the messaging channel a conversation lives on
type ChannelType string

const (
	ChannelWhatsApp    ChannelType = "whatsapp"
	ChannelInstagramDM ChannelType = "instagram_dm"
	ChannelTelegram    ChannelType = "telegram"
)

// IsValid checks if the channel type is valid
func (c ChannelType) IsValid() bool {
	switch c {
	case ChannelWhatsApp, ChannelInstagramDM, ChannelTelegram:
		return true
	}
	return false
}

// ConversationStatus represents the triage state of a thread
type ConversationStatus string

const (
	ConversationOpen           ConversationStatus = "open"
	ConversationClosed         ConversationStatus = "closed"
	ConversationNeedsAttention ConversationStatus = "needs_attention"
)

// IsValid checks if the conversation status is valid
func (s ConversationStatus) IsValid() bool {
	switch s {
	case ConversationOpen, ConversationClosed, ConversationNeedsAttention:
		return true
	}
	return false
}

// Conversation is a per-contractor message thread on a channel
type Conversation struct {
	shared.TenantEntity
	ContractorID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"contractor_id"`
	Channel       ChannelType        `gorm:"type:varchar(20);not null" json:"channel"`
	Status        ConversationStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	LastMessageAt *time.Time         `gorm:"index" json:"last_message_at"`
}

// TableName returns the table name for GORM
func (Conversation) TableName() string {
	return "conversations"
}

// NewConversation opens a thread with a contractor on a channel
func NewConversation(userID, contractorID uuid.UUID, channel ChannelType) (*Conversation, error) {
	if !channel.IsValid() {
		return nil, shared.NewDomainError("INVALID_CHANNEL", "Invalid conversation channel")
	}
	return &Conversation{
		TenantEntity: shared.NewTenantEntity(userID),
		ContractorID: contractorID,
		Channel:      channel,
		Status:       ConversationOpen,
	}, nil
}

// SetStatus transitions the conversation to a new triage state
func (c *Conversation) SetStatus(status ConversationStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid conversation status")
	}
	c.Status = status
	c.Touch()
	return nil
}

// RecordActivity bumps the last message timestamp
func (c *Conversation) RecordActivity(at time.Time) {
	c.LastMessageAt = &at
	c.Touch()
}
