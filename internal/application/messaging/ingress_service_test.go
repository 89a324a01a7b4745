package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/artistai/backend/internal/domain/channel"
	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockConversationRepository is a mock implementation of messaging.ConversationRepository
type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*messaging.Conversation, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.Conversation), args.Error(1)
}

func (m *MockConversationRepository) FindByContractor(ctx context.Context, userID, contractorID uuid.UUID, ch messaging.ChannelType) (*messaging.Conversation, error) {
	args := m.Called(ctx, userID, contractorID, ch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.Conversation), args.Error(1)
}

func (m *MockConversationRepository) FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]messaging.Conversation, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]messaging.Conversation), args.Error(1)
}

func (m *MockConversationRepository) CountByStatus(ctx context.Context, userID uuid.UUID, status messaging.ConversationStatus) (int64, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConversationRepository) Save(ctx context.Context, conversation *messaging.Conversation) error {
	args := m.Called(ctx, conversation)
	return args.Error(0)
}

func (m *MockConversationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockMessageRepository is a mock implementation of messaging.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) FindByConversation(ctx context.Context, userID, conversationID uuid.UUID, page shared.Page) ([]messaging.Message, error) {
	args := m.Called(ctx, userID, conversationID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]messaging.Message), args.Error(1)
}

func (m *MockMessageRepository) FindByWhatsappMessageID(ctx context.Context, userID uuid.UUID, whatsappMessageID string) (*messaging.Message, error) {
	args := m.Called(ctx, userID, whatsappMessageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.Message), args.Error(1)
}

func (m *MockMessageRepository) Append(ctx context.Context, message *messaging.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// MockContractorRepository is a mock implementation of crm.ContractorRepository
type MockContractorRepository struct {
	mock.Mock
}

func (m *MockContractorRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*crm.Contractor, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Contractor), args.Error(1)
}

func (m *MockContractorRepository) FindByPhone(ctx context.Context, userID uuid.UUID, phone string) (*crm.Contractor, error) {
	args := m.Called(ctx, userID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Contractor), args.Error(1)
}

func (m *MockContractorRepository) FindDuplicate(ctx context.Context, userID uuid.UUID, phone string, cpfCnpj *string, excludeID uuid.UUID) (*crm.Contractor, string, error) {
	args := m.Called(ctx, userID, phone, cpfCnpj, excludeID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*crm.Contractor), args.String(1), args.Error(2)
}

func (m *MockContractorRepository) FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]crm.Contractor, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Contractor), args.Error(1)
}

func (m *MockContractorRepository) FindRecentlyCreated(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]crm.Contractor, error) {
	args := m.Called(ctx, userID, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Contractor), args.Error(1)
}

func (m *MockContractorRepository) CountByStage(ctx context.Context, userID uuid.UUID, stageID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, stageID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractorRepository) CountInPipeline(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractorRepository) Save(ctx context.Context, contractor *crm.Contractor) error {
	args := m.Called(ctx, contractor)
	return args.Error(0)
}

func (m *MockContractorRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockInstanceRepository is a mock implementation of channel.InstanceRepository
type MockInstanceRepository struct {
	mock.Mock
}

func (m *MockInstanceRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*channel.Instance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*channel.Instance), args.Error(1)
}

func (m *MockInstanceRepository) FindByName(ctx context.Context, instanceName string) (*channel.Instance, error) {
	args := m.Called(ctx, instanceName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*channel.Instance), args.Error(1)
}

func (m *MockInstanceRepository) Save(ctx context.Context, instance *channel.Instance) error {
	args := m.Called(ctx, instance)
	return args.Error(0)
}

func (m *MockInstanceRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockIdempotencyStore is a mock implementation of messaging.IdempotencyStore
type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, messageID string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, messageID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) IsProcessed(ctx context.Context, messageID string) (bool, error) {
	args := m.Called(ctx, messageID)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

type ingressFixture struct {
	conversationRepo *MockConversationRepository
	messageRepo      *MockMessageRepository
	contractorRepo   *MockContractorRepository
	instanceRepo     *MockInstanceRepository
	dedup            *MockIdempotencyStore
	service          *IngressService
}

func newIngressFixture(fallbackTenantID uuid.UUID) *ingressFixture {
	f := &ingressFixture{
		conversationRepo: new(MockConversationRepository),
		messageRepo:      new(MockMessageRepository),
		contractorRepo:   new(MockContractorRepository),
		instanceRepo:     new(MockInstanceRepository),
		dedup:            new(MockIdempotencyStore),
	}
	conversations := NewConversationService(f.conversationRepo, f.messageRepo, f.contractorRepo)
	f.service = NewIngressService(conversations, f.messageRepo, f.instanceRepo,
		f.dedup, fallbackTenantID, 24*time.Hour, zap.NewNop())
	return f
}

func TestIngressService_Ingest(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("stores message on the resolved tenant's thread", func(t *testing.T) {
		f := newIngressFixture(uuid.Nil)

		apiKey := "instance-key"
		instance := channel.NewInstance(userID, &apiKey)
		contractor, err := crm.NewContractor(userID, "Prefeitura de Goiânia", "62999990001")
		require.NoError(t, err)
		conversation, err := messaging.NewConversation(userID, contractor.ID, messaging.ChannelWhatsApp)
		require.NoError(t, err)

		waID := "wamid.abc123"
		f.instanceRepo.On("FindByName", ctx, instance.InstanceName).Return(instance, nil)
		f.dedup.On("MarkProcessed", ctx, waID, 24*time.Hour).Return(true, nil)
		f.contractorRepo.On("FindByPhone", ctx, userID, "62999990001").Return(contractor, nil)
		f.conversationRepo.On("FindByContractor", ctx, userID, contractor.ID, messaging.ChannelWhatsApp).
			Return(conversation, nil)
		f.messageRepo.On("Append", ctx, mock.AnythingOfType("*messaging.Message")).Return(nil)

		resp, err := f.service.Ingest(ctx, IngressMessageRequest{
			InstanceName:      instance.InstanceName,
			FromPhone:         "62999990001",
			Content:           "Qual o valor do show?",
			WhatsappMessageID: &waID,
		})
		require.NoError(t, err)
		assert.Equal(t, conversation.ID, resp.ConversationID)
		assert.Equal(t, "user", resp.SenderType)
		assert.Equal(t, &waID, resp.WhatsappMessageID)
	})

	t.Run("redelivery returns the stored message", func(t *testing.T) {
		f := newIngressFixture(userID)

		conversationID := uuid.New()
		waID := "wamid.dup456"
		stored, err := messaging.NewMessage(userID, conversationID, messaging.SenderUser,
			messaging.ContentText, "Fechado!", time.Now())
		require.NoError(t, err)
		stored.WhatsappMessageID = &waID

		f.dedup.On("MarkProcessed", ctx, waID, 24*time.Hour).Return(false, nil)
		f.messageRepo.On("FindByWhatsappMessageID", ctx, userID, waID).Return(stored, nil)

		resp, err := f.service.Ingest(ctx, IngressMessageRequest{
			FromPhone:         "62999990001",
			Content:           "Fechado!",
			WhatsappMessageID: &waID,
		})
		require.NoError(t, err)
		assert.Equal(t, stored.ID, resp.ID)
		f.messageRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("creates placeholder contractor for unknown phone", func(t *testing.T) {
		f := newIngressFixture(userID)

		f.contractorRepo.On("FindByPhone", ctx, userID, "62988880002").Return(nil, shared.ErrNotFound)
		f.contractorRepo.On("Save", ctx, mock.MatchedBy(func(c *crm.Contractor) bool {
			return c.Name == "Contato 62988880002" && c.Phone == "62988880002"
		})).Return(nil)
		f.conversationRepo.On("FindByContractor", ctx, userID, mock.AnythingOfType("uuid.UUID"), messaging.ChannelWhatsApp).
			Return(nil, shared.ErrNotFound)
		f.conversationRepo.On("Save", ctx, mock.AnythingOfType("*messaging.Conversation")).Return(nil)
		f.messageRepo.On("Append", ctx, mock.AnythingOfType("*messaging.Message")).Return(nil)

		resp, err := f.service.Ingest(ctx, IngressMessageRequest{
			FromPhone: "62988880002",
			Content:   "Olá, vocês agenciam o Luan?",
		})
		require.NoError(t, err)
		assert.Equal(t, "text", resp.ContentType)
	})

	t.Run("unresolvable tenant is rejected", func(t *testing.T) {
		f := newIngressFixture(uuid.Nil)

		f.instanceRepo.On("FindByName", ctx, "user_deadbeef").Return(nil, shared.ErrNotFound)

		_, err := f.service.Ingest(ctx, IngressMessageRequest{
			InstanceName: "user_deadbeef",
			FromPhone:    "62988880003",
			Content:      "oi",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNRESOLVED_TENANT", domainErr.Code)
	})
}
