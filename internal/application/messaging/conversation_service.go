package messaging

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ConversationService handles conversation thread operations
type ConversationService struct {
	conversationRepo messaging.ConversationRepository
	messageRepo      messaging.MessageRepository
	contractorRepo   crm.ContractorRepository
}

// NewConversationService creates a new ConversationService
func NewConversationService(
	conversationRepo messaging.ConversationRepository,
	messageRepo messaging.MessageRepository,
	contractorRepo crm.ContractorRepository,
) *ConversationService {
	return &ConversationService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		contractorRepo:   contractorRepo,
	}
}

// List retrieves the user's conversations, most recently active first
func (s *ConversationService) List(ctx context.Context, userID uuid.UUID, page shared.Page) ([]ConversationResponse, error) {
	conversations, err := s.conversationRepo.FindAll(ctx, userID, page.Normalize())
	if err != nil {
		return nil, err
	}

	responses := make([]ConversationResponse, len(conversations))
	for i := range conversations {
		contractor, err := s.contractorRepo.FindByID(ctx, userID, conversations[i].ContractorID)
		if err != nil {
			contractor = nil
		}
		responses[i] = *ToConversationResponse(&conversations[i], contractor)
	}
	return responses, nil
}

// ListMessages retrieves a conversation's messages oldest first,
// verifying the thread belongs to the user.
func (s *ConversationService) ListMessages(ctx context.Context, userID, conversationID uuid.UUID, page shared.Page) ([]MessageResponse, error) {
	if _, err := s.conversationRepo.FindByID(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByConversation(ctx, userID, conversationID, page.Normalize())
	if err != nil {
		return nil, err
	}

	responses := make([]MessageResponse, len(messages))
	for i := range messages {
		responses[i] = *ToMessageResponse(&messages[i])
	}
	return responses, nil
}

// CreateMessage appends a manual message to one of the user's threads
func (s *ConversationService) CreateMessage(ctx context.Context, userID, conversationID uuid.UUID, req CreateMessageRequest) (*MessageResponse, error) {
	if _, err := s.conversationRepo.FindByID(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	contentType := messaging.ContentText
	if req.ContentType != "" {
		contentType = messaging.ContentType(req.ContentType)
	}

	message, err := messaging.NewMessage(userID, conversationID,
		messaging.SenderType(req.SenderType), contentType, req.Content, req.Timestamp)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.Append(ctx, message); err != nil {
		return nil, err
	}

	return ToMessageResponse(message), nil
}

// UpdateStatus changes a conversation's triage status
func (s *ConversationService) UpdateStatus(ctx context.Context, userID, conversationID uuid.UUID, req UpdateConversationRequest) (*ConversationResponse, error) {
	conversation, err := s.conversationRepo.FindByID(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	if err := conversation.SetStatus(messaging.ConversationStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.conversationRepo.Save(ctx, conversation); err != nil {
		return nil, err
	}

	contractor, err := s.contractorRepo.FindByID(ctx, userID, conversation.ContractorID)
	if err != nil {
		contractor = nil
	}
	return ToConversationResponse(conversation, contractor), nil
}

// GetOrCreate finds the thread with a contractor phone on a channel,
// creating a placeholder contractor and a fresh thread when needed.
func (s *ConversationService) GetOrCreate(ctx context.Context, userID uuid.UUID, phone string, channel messaging.ChannelType) (*messaging.Conversation, error) {
	contractor, err := s.contractorRepo.FindByPhone(ctx, userID, phone)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		contractor, err = crm.NewPlaceholderContractor(userID, phone)
		if err != nil {
			return nil, err
		}
		if err := s.contractorRepo.Save(ctx, contractor); err != nil {
			return nil, err
		}
	}

	conversation, err := s.conversationRepo.FindByContractor(ctx, userID, contractor.ID, channel)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	conversation, err = messaging.NewConversation(userID, contractor.ID, channel)
	if err != nil {
		return nil, err
	}
	if err := s.conversationRepo.Save(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}
