package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/artistai/backend/internal/domain/booking"
	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/artistai/backend/internal/domain/roster"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service aggregates cross-context numbers for the main dashboard.
// Each section degrades to zeros when its query fails so one broken
// table never blanks the whole screen.
type Service struct {
	artistRepo       roster.ArtistRepository
	contractorRepo   crm.ContractorRepository
	stageRepo        crm.StageRepository
	eventRepo        booking.EventRepository
	analyticsRepo    finance.AnalyticsRepository
	ledgerRepo       finance.LedgerRepository
	conversationRepo messaging.ConversationRepository
	logger           *zap.Logger
}

// NewService creates a new dashboard Service
func NewService(
	artistRepo roster.ArtistRepository,
	contractorRepo crm.ContractorRepository,
	stageRepo crm.StageRepository,
	eventRepo booking.EventRepository,
	analyticsRepo finance.AnalyticsRepository,
	ledgerRepo finance.LedgerRepository,
	conversationRepo messaging.ConversationRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		artistRepo:       artistRepo,
		contractorRepo:   contractorRepo,
		stageRepo:        stageRepo,
		eventRepo:        eventRepo,
		analyticsRepo:    analyticsRepo,
		ledgerRepo:       ledgerRepo,
		conversationRepo: conversationRepo,
		logger:           logger,
	}
}

// KPIs computes the headline numbers: active artists, contractors in
// the pipeline, bookings inside the next 30 days and the month's
// completed income.
func (s *Service) KPIs(ctx context.Context, userID uuid.UUID) (*KPIs, error) {
	kpis := &KPIs{MonthlyRevenue: decimal.Zero}

	if count, err := s.artistRepo.CountActive(ctx, userID); err != nil {
		s.logger.Warn("artist KPI query failed", zap.Error(err))
	} else {
		kpis.ActiveArtists = count
	}

	if count, err := s.contractorRepo.CountInPipeline(ctx, userID); err != nil {
		s.logger.Warn("lead KPI query failed", zap.Error(err))
	} else {
		kpis.ActiveLeads = count
	}

	today := startOfDay(time.Now().UTC())
	if count, err := s.eventRepo.CountUpcoming(ctx, userID, today, today.AddDate(0, 0, 30)); err != nil {
		s.logger.Warn("event KPI query failed", zap.Error(err))
	} else {
		kpis.UpcomingEvents = count
	}

	if summary, err := s.monthSummary(ctx, userID); err != nil {
		s.logger.Warn("revenue KPI query failed", zap.Error(err))
	} else {
		kpis.MonthlyRevenue = summary.TotalIncome
	}

	return kpis, nil
}

// PipelineSummary lists each funnel step with its contractor count,
// prefixed by the bucket of contractors not yet assigned to a stage.
func (s *Service) PipelineSummary(ctx context.Context, userID uuid.UUID) ([]PipelineSummaryItem, error) {
	summary := make([]PipelineSummaryItem, 0, 8)

	unassigned, err := s.contractorRepo.CountByStage(ctx, userID, nil)
	if err != nil {
		s.logger.Warn("unassigned count query failed", zap.Error(err))
		unassigned = 0
	}
	summary = append(summary, PipelineSummaryItem{
		StageName:       "Não Atribuídos",
		ContractorCount: unassigned,
	})

	stages, err := s.stageRepo.FindAll(ctx, userID, shared.DefaultPage())
	if err != nil {
		s.logger.Warn("stage listing failed", zap.Error(err))
		return summary, nil
	}

	for i := range stages {
		count, err := s.contractorRepo.CountByStage(ctx, userID, &stages[i].ID)
		if err != nil {
			s.logger.Warn("stage count query failed",
				zap.String("stage_id", stages[i].ID.String()), zap.Error(err))
			count = 0
		}
		stageID := stages[i].ID
		summary = append(summary, PipelineSummaryItem{
			StageID:         &stageID,
			StageName:       stages[i].Name,
			ContractorCount: count,
		})
	}

	return summary, nil
}

// FinancialSummary digests the current month's completed ledger activity
func (s *Service) FinancialSummary(ctx context.Context, userID uuid.UUID) (*FinancialSummary, error) {
	summary, err := s.monthSummary(ctx, userID)
	if err != nil {
		s.logger.Warn("financial summary query failed", zap.Error(err))
		return &FinancialSummary{
			MonthlyIncome:   decimal.Zero,
			MonthlyExpenses: decimal.Zero,
			NetIncome:       decimal.Zero,
		}, nil
	}

	return &FinancialSummary{
		MonthlyIncome:   summary.TotalIncome,
		MonthlyExpenses: summary.TotalExpenses,
		NetIncome:       summary.NetIncome,
	}, nil
}

// RecentActivities feeds the activity timeline from the last week's
// events, contractors and ledger entries, newest first.
func (s *Service) RecentActivities(ctx context.Context, userID uuid.UUID) ([]RecentActivity, error) {
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	activities := make([]RecentActivity, 0, 7)

	events, err := s.eventRepo.FindRecentlyCreated(ctx, userID, weekAgo, 3)
	if err != nil {
		s.logger.Warn("recent events query failed", zap.Error(err))
	}
	for i := range events {
		activities = append(activities, RecentActivity{
			Type:        "event",
			Title:       fmt.Sprintf("Evento '%s' criado", events[i].Title),
			Description: fmt.Sprintf("Agendado para %s", events[i].EventDate.Format("02/01/2006")),
			Timestamp:   events[i].CreatedAt,
			Icon:        "calendar",
		})
	}

	contractors, err := s.contractorRepo.FindRecentlyCreated(ctx, userID, weekAgo, 2)
	if err != nil {
		s.logger.Warn("recent contractors query failed", zap.Error(err))
	}
	for i := range contractors {
		activities = append(activities, RecentActivity{
			Type:        "contractor",
			Title:       fmt.Sprintf("Novo contratante: %s", contractors[i].Name),
			Description: fmt.Sprintf("Telefone: %s", contractors[i].Phone),
			Timestamp:   contractors[i].CreatedAt,
			Icon:        "user-plus",
		})
	}

	transactions, err := s.ledgerRepo.FindRecentlyCreated(ctx, userID, weekAgo, 2)
	if err != nil {
		s.logger.Warn("recent transactions query failed", zap.Error(err))
	}
	for i := range transactions {
		label := "Despesa"
		if transactions[i].TransactionType == finance.TransactionIncome {
			label = "Receita"
		}
		activities = append(activities, RecentActivity{
			Type:        "transaction",
			Title:       fmt.Sprintf("%s: R$ %s", label, transactions[i].Amount.StringFixed(2)),
			Description: transactions[i].Description,
			Timestamp:   transactions[i].CreatedAt,
			Icon:        "dollar-sign",
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > 5 {
		activities = activities[:5]
	}
	return activities, nil
}

// UpcomingEvents lists the next confirmed or pending bookings with
// their artist and contractor names resolved.
func (s *Service) UpcomingEvents(ctx context.Context, userID uuid.UUID) ([]UpcomingEventSummary, error) {
	today := startOfDay(time.Now().UTC())
	events, err := s.eventRepo.FindUpcoming(ctx, userID, today, 5)
	if err != nil {
		s.logger.Warn("upcoming events query failed", zap.Error(err))
		return []UpcomingEventSummary{}, nil
	}

	summaries := make([]UpcomingEventSummary, 0, len(events))
	for i := range events {
		event := &events[i]
		summary := UpcomingEventSummary{
			ID:            event.ID,
			Title:         event.Title,
			EventDate:     event.EventDate,
			EventLocation: event.EventLocation,
			AgreedFee:     event.AgreedFee,
			Status:        string(event.Status),
			DaysUntil:     int(startOfDay(event.EventDate.UTC()).Sub(today).Hours() / 24),
		}
		if artist, err := s.artistRepo.FindByID(ctx, userID, event.ArtistID); err == nil {
			summary.ArtistName = &artist.Name
		}
		if contractor, err := s.contractorRepo.FindByID(ctx, userID, event.ContractorID); err == nil {
			summary.ContractorName = &contractor.Name
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ConversationsSummary counts open threads and the ones flagged for
// attention. Failed counts degrade to zero.
func (s *Service) ConversationsSummary(ctx context.Context, userID uuid.UUID) (*ConversationsSummary, error) {
	summary := &ConversationsSummary{}

	if count, err := s.conversationRepo.CountByStatus(ctx, userID, messaging.ConversationOpen); err != nil {
		s.logger.Warn("open conversations count failed", zap.Error(err))
	} else {
		summary.OpenConversations = count
	}

	if count, err := s.conversationRepo.CountByStatus(ctx, userID, messaging.ConversationNeedsAttention); err != nil {
		s.logger.Warn("attention conversations count failed", zap.Error(err))
	} else {
		summary.NeedsAttention = count
	}

	summary.TotalActive = summary.OpenConversations + summary.NeedsAttention
	return summary, nil
}

// Main assembles all dashboard sections in one call
func (s *Service) Main(ctx context.Context, userID uuid.UUID) (*MainDashboard, error) {
	kpis, err := s.KPIs(ctx, userID)
	if err != nil {
		return nil, err
	}
	pipeline, err := s.PipelineSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	financial, err := s.FinancialSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	activities, err := s.RecentActivities(ctx, userID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.UpcomingEvents(ctx, userID)
	if err != nil {
		return nil, err
	}
	conversations, err := s.ConversationsSummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &MainDashboard{
		KPIs:                 *kpis,
		PipelineSummary:      pipeline,
		FinancialSummary:     *financial,
		RecentActivities:     activities,
		UpcomingEvents:       upcoming,
		ConversationsSummary: *conversations,
	}, nil
}

func (s *Service) monthSummary(ctx context.Context, userID uuid.UUID) (*finance.Summary, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return s.analyticsRepo.Summarize(ctx, userID, monthStart, now)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
