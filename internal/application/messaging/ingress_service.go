package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/artistai/backend/internal/domain/channel"
	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IngressService accepts webhook-delivered channel messages, resolves
// the owning tenant, deduplicates redeliveries and stores the message
// on the right conversation thread.
type IngressService struct {
	conversations    *ConversationService
	messageRepo      messaging.MessageRepository
	instanceRepo     channel.InstanceRepository
	dedup            messaging.IdempotencyStore
	fallbackTenantID uuid.UUID
	dedupTTL         time.Duration
	logger           *zap.Logger
}

// NewIngressService creates a new IngressService. fallbackTenantID may
// be uuid.Nil when no fallback tenant is configured.
func NewIngressService(
	conversations *ConversationService,
	messageRepo messaging.MessageRepository,
	instanceRepo channel.InstanceRepository,
	dedup messaging.IdempotencyStore,
	fallbackTenantID uuid.UUID,
	dedupTTL time.Duration,
	logger *zap.Logger,
) *IngressService {
	return &IngressService{
		conversations:    conversations,
		messageRepo:      messageRepo,
		instanceRepo:     instanceRepo,
		dedup:            dedup,
		fallbackTenantID: fallbackTenantID,
		dedupTTL:         dedupTTL,
		logger:           logger,
	}
}

// Ingest stores an inbound channel message. Redelivered messages are
// answered with the already stored row instead of a duplicate.
func (s *IngressService) Ingest(ctx context.Context, req IngressMessageRequest) (*MessageResponse, error) {
	userID, err := s.resolveTenant(ctx, req.InstanceName)
	if err != nil {
		return nil, err
	}

	if req.WhatsappMessageID != nil && *req.WhatsappMessageID != "" {
		newlyMarked, err := s.dedup.MarkProcessed(ctx, *req.WhatsappMessageID, s.dedupTTL)
		if err != nil {
			// A broken dedup store must not drop messages; the unique
			// index on whatsapp_message_id still blocks true duplicates.
			s.logger.Warn("ingress dedup check failed", zap.Error(err))
		} else if !newlyMarked {
			stored, err := s.messageRepo.FindByWhatsappMessageID(ctx, userID, *req.WhatsappMessageID)
			if err == nil {
				s.logger.Info("ignoring redelivered channel message",
					zap.String("whatsapp_message_id", *req.WhatsappMessageID))
				return ToMessageResponse(stored), nil
			}
			if !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
		}
	}

	channelType := messaging.ChannelWhatsApp
	if req.Channel != "" {
		channelType = messaging.ChannelType(req.Channel)
	}

	conversation, err := s.conversations.GetOrCreate(ctx, userID, req.FromPhone, channelType)
	if err != nil {
		return nil, err
	}

	contentType := messaging.ContentText
	if req.ContentType != "" {
		contentType = messaging.ContentType(req.ContentType)
	}

	message, err := messaging.NewMessage(userID, conversation.ID,
		messaging.SenderUser, contentType, req.Content, req.Timestamp)
	if err != nil {
		return nil, err
	}
	message.WhatsappMessageID = req.WhatsappMessageID

	if err := s.messageRepo.Append(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("channel message ingested",
		zap.String("conversation_id", conversation.ID.String()),
		zap.String("channel", string(channelType)))

	return ToMessageResponse(message), nil
}

// resolveTenant maps the provider instance name to its owning user,
// falling back to the configured tenant when the name is absent or
// unknown.
func (s *IngressService) resolveTenant(ctx context.Context, instanceName string) (uuid.UUID, error) {
	if instanceName != "" {
		instance, err := s.instanceRepo.FindByName(ctx, instanceName)
		if err == nil {
			return instance.UserID, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, err
		}
		s.logger.Warn("unknown instance on ingress", zap.String("instance_name", instanceName))
	}

	if s.fallbackTenantID == uuid.Nil {
		return uuid.Nil, shared.NewDomainError("UNRESOLVED_TENANT",
			"Message cannot be attributed to a user")
	}
	return s.fallbackTenantID, nil
}
