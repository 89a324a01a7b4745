package messaging

import (
	"time"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SenderType tells which side of the conversation sent a message
type SenderType string

const (
	SenderUser  SenderType = "user"
	SenderAgent SenderType = "agent"
)

// IsValid checks if the sender type is valid
func (s SenderType) IsValid() bool {
	return s == SenderUser || s == SenderAgent
}

// ContentType classifies the payload of a message
type ContentType string

const (
	ContentText     ContentType = "text"
	ContentImage    ContentType = "image"
	ContentAudio    ContentType = "audio"
	ContentDocument ContentType = "document"
)

// IsValid checks if the content type is valid
func (c ContentType) IsValid() bool {
	switch c {
	case ContentText, ContentImage, ContentAudio, ContentDocument:
		return true
	}
	return false
}

// Message is one entry of a conversation thread
type Message struct {
	shared.TenantEntity
	ConversationID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"conversation_id"`
	SenderType        SenderType  `gorm:"type:varchar(10);not null" json:"sender_type"`
	ContentType       ContentType `gorm:"type:varchar(20);not null;default:'text'" json:"content_type"`
	Content           string      `gorm:"type:text;not null" json:"content"`
	WhatsappMessageID *string     `gorm:"type:varchar(255);uniqueIndex" json:"whatsapp_message_id"`
	Timestamp         time.Time   `gorm:"not null;index" json:"timestamp"`
}

// TableName returns the table name for GORM
func (Message) TableName() string {
	return "messages"
}

// NewMessage appends a message to a conversation. A zero timestamp
// defaults to the current time.
func NewMessage(userID, conversationID uuid.UUID, sender SenderType, contentType ContentType, content string, timestamp time.Time) (*Message, error) {
	if !sender.IsValid() {
		return nil, shared.NewDomainError("INVALID_SENDER", "Message sender must be user or agent")
	}
	if !contentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTENT_TYPE", "Invalid message content type")
	}
	if content == "" {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Message content cannot be empty")
	}
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	return &Message{
		TenantEntity:   shared.NewTenantEntity(userID),
		ConversationID: conversationID,
		SenderType:     sender,
		ContentType:    contentType,
		Content:        content,
		Timestamp:      timestamp,
	}, nil
}
