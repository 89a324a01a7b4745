package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary aggregates ledger activity over a period. Completed
// transactions feed the period totals; pending ones are reported
// regardless of date.
type Summary struct {
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	NetIncome       decimal.Decimal `json:"net_income"`
	PendingIncome   decimal.Decimal `json:"pending_income"`
	PendingExpenses decimal.Decimal `json:"pending_expenses"`
	PeriodStart     time.Time       `json:"period_start"`
	PeriodEnd       time.Time       `json:"period_end"`
}

// CategorySummary is one category's share of the period's activity
type CategorySummary struct {
	CategoryID        uuid.UUID       `json:"category_id"`
	CategoryName      string          `json:"category_name"`
	CategoryType      CategoryType    `json:"category_type"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	TransactionCount  int64           `json:"transaction_count"`
	PercentageOfTotal decimal.Decimal `json:"percentage_of_total"`
}

// MonthlyTrend is one calendar month's income and expense totals
type MonthlyTrend struct {
	Month    string          `json:"month"`
	Year     int             `json:"year"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// AnalyticsRepository runs the read-only reporting queries
type AnalyticsRepository interface {
	// Summarize totals completed income and expenses inside
	// [start, end] plus all-time pending amounts.
	Summarize(ctx context.Context, userID uuid.UUID, start, end time.Time) (*Summary, error)

	// SummarizeByCategory groups completed period activity per
	// category. PercentageOfTotal is zero when the grand total is zero.
	SummarizeByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]CategorySummary, error)

	// MonthlyTrends buckets the last months*30 days of completed
	// activity by calendar month, oldest first.
	MonthlyTrends(ctx context.Context, userID uuid.UUID, months int) ([]MonthlyTrend, error)
}
