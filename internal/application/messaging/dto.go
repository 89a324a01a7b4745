package messaging

import (
	"time"

	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/google/uuid"
)

// CreateMessageRequest appends a manual message to a conversation
type CreateMessageRequest struct {
	SenderType  string    `json:"sender_type" binding:"required,oneof=user agent"`
	ContentType string    `json:"content_type" binding:"omitempty,oneof=text image audio document"`
	Content     string    `json:"content" binding:"required,min=1"`
	Timestamp   time.Time `json:"timestamp"`
}

// UpdateConversationRequest changes a conversation's triage status
type UpdateConversationRequest struct {
	Status string `json:"status" binding:"required,oneof=open closed needs_attention"`
}

// IngressMessageRequest is the webhook payload delivered when a
// contractor messages on an external channel.
type IngressMessageRequest struct {
	InstanceName      string    `json:"instance_name"`
	FromPhone         string    `json:"from_phone" binding:"required,min=1,max=20"`
	Channel           string    `json:"channel" binding:"omitempty,oneof=whatsapp instagram_dm telegram"`
	ContentType       string    `json:"content_type" binding:"omitempty,oneof=text image audio document"`
	Content           string    `json:"content" binding:"required,min=1"`
	Timestamp         time.Time `json:"timestamp"`
	WhatsappMessageID *string   `json:"whatsapp_message_id"`
}

// ConversationResponse represents a conversation in API responses
type ConversationResponse struct {
	ID            uuid.UUID          `json:"id"`
	ContractorID  uuid.UUID          `json:"contractor_id"`
	Channel       string             `json:"channel"`
	Status        string             `json:"status"`
	LastMessageAt *time.Time         `json:"last_message_at"`
	Contractor    *ContractorSummary `json:"contractor,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ContractorSummary inlines the thread's contractor into responses
type ContractorSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// ToConversationResponse converts a domain conversation to a response DTO
func ToConversationResponse(conversation *messaging.Conversation, contractor *crm.Contractor) *ConversationResponse {
	resp := &ConversationResponse{
		ID:            conversation.ID,
		ContractorID:  conversation.ContractorID,
		Channel:       string(conversation.Channel),
		Status:        string(conversation.Status),
		LastMessageAt: conversation.LastMessageAt,
		CreatedAt:     conversation.CreatedAt,
		UpdatedAt:     conversation.UpdatedAt,
	}
	if contractor != nil {
		resp.Contractor = &ContractorSummary{
			ID:    contractor.ID,
			Name:  contractor.Name,
			Phone: contractor.Phone,
		}
	}
	return resp
}

// MessageResponse represents a message in API responses
type MessageResponse struct {
	ID                uuid.UUID `json:"id"`
	ConversationID    uuid.UUID `json:"conversation_id"`
	SenderType        string    `json:"sender_type"`
	ContentType       string    `json:"content_type"`
	Content           string    `json:"content"`
	WhatsappMessageID *string   `json:"whatsapp_message_id"`
	Timestamp         time.Time `json:"timestamp"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToMessageResponse converts a domain message to a response DTO
func ToMessageResponse(message *messaging.Message) *MessageResponse {
	return &MessageResponse{
		ID:                message.ID,
		ConversationID:    message.ConversationID,
		SenderType:        string(message.SenderType),
		ContentType:       string(message.ContentType),
		Content:           message.Content,
		WhatsappMessageID: message.WhatsappMessageID,
		Timestamp:         message.Timestamp,
		CreatedAt:         message.CreatedAt,
	}
}
