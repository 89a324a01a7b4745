package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KPIs are the headline numbers of the main dashboard
type KPIs struct {
	ActiveArtists  int64           `json:"active_artists"`
	ActiveLeads    int64           `json:"active_leads"`
	UpcomingEvents int64           `json:"upcoming_events"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
}

// PipelineSummaryItem is one funnel step with its contractor count.
// StageID is nil for the synthetic unassigned bucket.
type PipelineSummaryItem struct {
	StageID         *uuid.UUID `json:"stage_id"`
	StageName       string     `json:"stage_name"`
	ContractorCount int64      `json:"contractor_count"`
}

// FinancialSummary is the current month's ledger digest
type FinancialSummary struct {
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	NetIncome       decimal.Decimal `json:"net_income"`
}

// RecentActivity is one entry of the dashboard activity feed
type RecentActivity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Icon        string    `json:"icon"`
}

// UpcomingEventSummary is one agenda entry of the upcoming events list
type UpcomingEventSummary struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	EventDate      time.Time       `json:"event_date"`
	EventLocation  *string         `json:"event_location"`
	AgreedFee      decimal.Decimal `json:"agreed_fee"`
	Status         string          `json:"status"`
	DaysUntil      int             `json:"days_until"`
	ArtistName     *string         `json:"artist_name"`
	ContractorName *string         `json:"contractor_name"`
}

// ConversationsSummary counts the threads demanding attention
type ConversationsSummary struct {
	OpenConversations int64 `json:"open_conversations"`
	NeedsAttention    int64 `json:"needs_attention"`
	TotalActive       int64 `json:"total_active"`
}

// MainDashboard bundles all dashboard sections in one payload
type MainDashboard struct {
	KPIs                 KPIs                   `json:"kpis"`
	PipelineSummary      []PipelineSummaryItem  `json:"pipeline_summary"`
	FinancialSummary     FinancialSummary       `json:"financial_summary"`
	RecentActivities     []RecentActivity       `json:"recent_activities"`
	UpcomingEvents       []UpcomingEventSummary `json:"upcoming_events"`
	ConversationsSummary ConversationsSummary   `json:"conversations_summary"`
}
