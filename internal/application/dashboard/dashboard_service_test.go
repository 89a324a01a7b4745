package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/artistai/backend/internal/domain/booking"
	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/artistai/backend/internal/domain/roster"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockArtistRepository struct{ mock.Mock }

func (m *MockArtistRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*roster.Artist, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Artist), args.Error(1)
}

func (m *MockArtistRepository) FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]roster.Artist, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]roster.Artist), args.Error(1)
}

func (m *MockArtistRepository) CountActive(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArtistRepository) Save(ctx context.Context, artist *roster.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *MockArtistRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockContractorRepository struct{ mock.Mock }

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
	return m.Called(ctx, contractor).Error(0)
}

func (m *MockContractorRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockStageRepository struct{ mock.Mock }

func (m *MockStageRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*crm.PipelineStage, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.PipelineStage), args.Error(1)
}

func (m *MockStageRepository) FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]crm.PipelineStage, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.PipelineStage), args.Error(1)
}

func (m *MockStageRepository) Save(ctx context.Context, stage *crm.PipelineStage) error {
	return m.Called(ctx, stage).Error(0)
}

func (m *MockStageRepository) Reorder(ctx context.Context, userID uuid.UUID, orders []crm.StageOrder) ([]crm.PipelineStage, error) {
	args := m.Called(ctx, userID, orders)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.PipelineStage), args.Error(1)
}

func (m *MockStageRepository) DeleteWithCleanup(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*booking.Event, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Event), args.Error(1)
}

func (m *MockEventRepository) FindAll(ctx context.Context, userID uuid.UUID, filter booking.EventFilter, page shared.Page) ([]booking.Event, error) {
	args := m.Called(ctx, userID, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Event), args.Error(1)
}

func (m *MockEventRepository) CountUpcoming(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) FindUpcoming(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]booking.Event, error) {
	args := m.Called(ctx, userID, from, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Event), args.Error(1)
}

func (m *MockEventRepository) FindRecentlyCreated(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]booking.Event, error) {
	args := m.Called(ctx, userID, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Event), args.Error(1)
}

func (m *MockEventRepository) Save(ctx context.Context, event *booking.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockAnalyticsRepository struct{ mock.Mock }

func (m *MockAnalyticsRepository) Summarize(ctx context.Context, userID uuid.UUID, start, end time.Time) (*finance.Summary, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Summary), args.Error(1)
}

func (m *MockAnalyticsRepository) SummarizeByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]finance.CategorySummary, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.CategorySummary), args.Error(1)
}

func (m *MockAnalyticsRepository) MonthlyTrends(ctx context.Context, userID uuid.UUID, months int) ([]finance.MonthlyTrend, error) {
	args := m.Called(ctx, userID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.MonthlyTrend), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*finance.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) FindAll(ctx context.Context, userID uuid.UUID, filter finance.TransactionFilter, page shared.Page) ([]finance.Transaction, error) {
	args := m.Called(ctx, userID, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) FindRecentlyCreated(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]finance.Transaction, error) {
	args := m.Called(ctx, userID, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) Post(ctx context.Context, transaction *finance.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *MockLedgerRepository) Amend(ctx context.Context, userID, id uuid.UUID, patch finance.TransactionPatch) (*finance.Transaction, error) {
	args := m.Called(ctx, userID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) Reverse(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockConversationRepository struct{ mock.Mock }

func (m *MockConversationRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*messaging.Conversation, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.Conversation), args.Error(1)
}

func (m *MockConversationRepository) FindByContractor(ctx context.Context, userID, contractorID uuid.UUID, channel messaging.ChannelType) (*messaging.Conversation, error) {
	args := m.Called(ctx, userID, contractorID, channel)
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
	return m.Called(ctx, conversation).Error(0)
}

func (m *MockConversationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type fixture struct {
	artistRepo       *MockArtistRepository
	contractorRepo   *MockContractorRepository
	stageRepo        *MockStageRepository
	eventRepo        *MockEventRepository
	analyticsRepo    *MockAnalyticsRepository
	ledgerRepo       *MockLedgerRepository
	conversationRepo *MockConversationRepository
	service          *Service
}

func newFixture() *fixture {
	f := &fixture{
		artistRepo:       new(MockArtistRepository),
		contractorRepo:   new(MockContractorRepository),
		stageRepo:        new(MockStageRepository),
		eventRepo:        new(MockEventRepository),
		analyticsRepo:    new(MockAnalyticsRepository),
		ledgerRepo:       new(MockLedgerRepository),
		conversationRepo: new(MockConversationRepository),
	}
	f.service = NewService(f.artistRepo, f.contractorRepo, f.stageRepo,
		f.eventRepo, f.analyticsRepo, f.ledgerRepo, f.conversationRepo, zap.NewNop())
	return f
}

func TestService_KPIs(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("assembles all counters", func(t *testing.T) {
		f := newFixture()

		f.artistRepo.On("CountActive", ctx, userID).Return(int64(4), nil)
		f.contractorRepo.On("CountInPipeline", ctx, userID).Return(int64(12), nil)
		f.eventRepo.On("CountUpcoming", ctx, userID,
			mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(int64(3), nil)
		f.analyticsRepo.On("Summarize", ctx, userID,
			mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(&finance.Summary{TotalIncome: decimal.NewFromInt(85000)}, nil)

		kpis, err := f.service.KPIs(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), kpis.ActiveArtists)
		assert.Equal(t, int64(12), kpis.ActiveLeads)
		assert.Equal(t, int64(3), kpis.UpcomingEvents)
		assert.True(t, kpis.MonthlyRevenue.Equal(decimal.NewFromInt(85000)))
	})

	t.Run("failed sections degrade to zero", func(t *testing.T) {
		f := newFixture()

		f.artistRepo.On("CountActive", ctx, userID).Return(int64(0), assert.AnError)
		f.contractorRepo.On("CountInPipeline", ctx, userID).Return(int64(12), nil)
		f.eventRepo.On("CountUpcoming", ctx, userID,
			mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(int64(0), assert.AnError)
		f.analyticsRepo.On("Summarize", ctx, userID,
			mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(nil, assert.AnError)

		kpis, err := f.service.KPIs(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), kpis.ActiveArtists)
		assert.Equal(t, int64(12), kpis.ActiveLeads)
		assert.True(t, kpis.MonthlyRevenue.IsZero())
	})
}

func TestService_PipelineSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unassigned bucket comes first", func(t *testing.T) {
		f := newFixture()

		lead, err := crm.NewPipelineStage(userID, "Contato Inicial", 1)
		require.NoError(t, err)
		negotiation, err := crm.NewPipelineStage(userID, "Negociação", 2)
		require.NoError(t, err)

		f.contractorRepo.On("CountByStage", ctx, userID, (*uuid.UUID)(nil)).Return(int64(5), nil)
		f.stageRepo.On("FindAll", ctx, userID, shared.DefaultPage()).
			Return([]crm.PipelineStage{*lead, *negotiation}, nil)
		f.contractorRepo.On("CountByStage", ctx, userID, mock.AnythingOfType("*uuid.UUID")).Return(int64(2), nil)

		summary, err := f.service.PipelineSummary(ctx, userID)
		require.NoError(t, err)
		require.Len(t, summary, 3)
		assert.Nil(t, summary[0].StageID)
		assert.Equal(t, "Não Atribuídos", summary[0].StageName)
		assert.Equal(t, int64(5), summary[0].ContractorCount)
		assert.Equal(t, "Contato Inicial", summary[1].StageName)
		assert.Equal(t, "Negociação", summary[2].StageName)
	})

	t.Run("stage listing failure still answers the unassigned bucket", func(t *testing.T) {
		f := newFixture()

		f.contractorRepo.On("CountByStage", ctx, userID, (*uuid.UUID)(nil)).Return(int64(5), nil)
		f.stageRepo.On("FindAll", ctx, userID, shared.DefaultPage()).Return(nil, assert.AnError)

		summary, err := f.service.PipelineSummary(ctx, userID)
		require.NoError(t, err)
		require.Len(t, summary, 1)
		assert.Equal(t, int64(5), summary[0].ContractorCount)
	})
}

func TestService_RecentActivities(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("merges sources newest first", func(t *testing.T) {
		f := newFixture()

		event, err := booking.NewEvent(userID, uuid.New(), uuid.New(), "Festa do Pequi",
			time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(50000))
		require.NoError(t, err)
		event.CreatedAt = time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

		contractor, err := crm.NewContractor(userID, "Prefeitura de Goiânia", "62999990001")
		require.NoError(t, err)
		contractor.CreatedAt = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

		transaction, err := finance.NewTransaction(userID, uuid.New(), finance.TransactionIncome,
			decimal.NewFromInt(1500), "Sinal do show", time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		transaction.CreatedAt = time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC)

		f.eventRepo.On("FindRecentlyCreated", ctx, userID,
			mock.AnythingOfType("time.Time"), 3).Return([]booking.Event{*event}, nil)
		f.contractorRepo.On("FindRecentlyCreated", ctx, userID,
			mock.AnythingOfType("time.Time"), 2).Return([]crm.Contractor{*contractor}, nil)
		f.ledgerRepo.On("FindRecentlyCreated", ctx, userID,
			mock.AnythingOfType("time.Time"), 2).Return([]finance.Transaction{*transaction}, nil)

		activities, err := f.service.RecentActivities(ctx, userID)
		require.NoError(t, err)
		require.Len(t, activities, 3)
		assert.Equal(t, "contractor", activities[0].Type)
		assert.Equal(t, "Novo contratante: Prefeitura de Goiânia", activities[0].Title)
		assert.Equal(t, "event", activities[1].Type)
		assert.Equal(t, "Evento 'Festa do Pequi' criado", activities[1].Title)
		assert.Equal(t, "Agendado para 20/09/2026", activities[1].Description)
		assert.Equal(t, "transaction", activities[2].Type)
		assert.Equal(t, "Receita: R$ 1500.00", activities[2].Title)
	})

	t.Run("failed sources degrade to an empty feed", func(t *testing.T) {
		f := newFixture()

		f.eventRepo.On("FindRecentlyCreated", ctx, userID,
			mock.AnythingOfType("time.Time"), 3).Return(nil, assert.AnError)
		f.contractorRepo.On("FindRecentlyCreated", ctx, userID,
			mock.AnythingOfType("time.Time"), 2).Return(nil, assert.AnError)
		f.ledgerRepo.On("FindRecentlyCreated", ctx, userID,
			mock.AnythingOfType("time.Time"), 2).Return(nil, assert.AnError)

		activities, err := f.service.RecentActivities(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, activities)
	})
}

func TestService_UpcomingEvents(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("resolves names and day distance", func(t *testing.T) {
		f := newFixture()

		artist, err := roster.NewArtist(userID, "Luan Santana")
		require.NoError(t, err)
		eventDate := startOfDay(time.Now().UTC()).AddDate(0, 0, 10)
		event, err := booking.NewEvent(userID, artist.ID, uuid.New(), "Festa do Pequi",
			eventDate, decimal.NewFromInt(50000))
		require.NoError(t, err)

		f.eventRepo.On("FindUpcoming", ctx, userID,
			mock.AnythingOfType("time.Time"), 5).Return([]booking.Event{*event}, nil)
		f.artistRepo.On("FindByID", ctx, userID, artist.ID).Return(artist, nil)
		f.contractorRepo.On("FindByID", ctx, userID, event.ContractorID).Return(nil, shared.ErrNotFound)

		events, err := f.service.UpcomingEvents(ctx, userID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Festa do Pequi", events[0].Title)
		assert.Equal(t, 10, events[0].DaysUntil)
		require.NotNil(t, events[0].ArtistName)
		assert.Equal(t, "Luan Santana", *events[0].ArtistName)
		assert.Nil(t, events[0].ContractorName)
	})

	t.Run("query failure degrades to an empty agenda", func(t *testing.T) {
		f := newFixture()

		f.eventRepo.On("FindUpcoming", ctx, userID,
			mock.AnythingOfType("time.Time"), 5).Return(nil, assert.AnError)

		events, err := f.service.UpcomingEvents(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestService_ConversationsSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("totals open and attention threads", func(t *testing.T) {
		f := newFixture()

		f.conversationRepo.On("CountByStatus", ctx, userID, messaging.ConversationOpen).Return(int64(7), nil)
		f.conversationRepo.On("CountByStatus", ctx, userID, messaging.ConversationNeedsAttention).Return(int64(2), nil)

		summary, err := f.service.ConversationsSummary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), summary.OpenConversations)
		assert.Equal(t, int64(2), summary.NeedsAttention)
		assert.Equal(t, int64(9), summary.TotalActive)
	})

	t.Run("failed counts degrade to zero", func(t *testing.T) {
		f := newFixture()

		f.conversationRepo.On("CountByStatus", ctx, userID, messaging.ConversationOpen).Return(int64(0), assert.AnError)
		f.conversationRepo.On("CountByStatus", ctx, userID, messaging.ConversationNeedsAttention).Return(int64(2), nil)

		summary, err := f.service.ConversationsSummary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.OpenConversations)
		assert.Equal(t, int64(2), summary.TotalActive)
	})
}
