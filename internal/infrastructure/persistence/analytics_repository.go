package persistence

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormAnalyticsRepository implements finance.AnalyticsRepository using GORM
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// Summarize totals completed income and expenses inside [start, end]
// plus all-time pending amounts.
func (r *GormAnalyticsRepository) Summarize(ctx context.Context, userID uuid.UUID, start, end time.Time) (*finance.Summary, error) {
	totalIncome, err := r.sumAmount(ctx, userID, finance.TransactionIncome, finance.TransactionCompleted, &start, &end)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := r.sumAmount(ctx, userID, finance.TransactionExpense, finance.TransactionCompleted, &start, &end)
	if err != nil {
		return nil, err
	}
	pendingIncome, err := r.sumAmount(ctx, userID, finance.TransactionIncome, finance.TransactionPending, nil, nil)
	if err != nil {
		return nil, err
	}
	pendingExpenses, err := r.sumAmount(ctx, userID, finance.TransactionExpense, finance.TransactionPending, nil, nil)
	if err != nil {
		return nil, err
	}

	return &finance.Summary{
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		NetIncome:       totalIncome.Sub(totalExpenses),
		PendingIncome:   pendingIncome,
		PendingExpenses: pendingExpenses,
		PeriodStart:     start,
		PeriodEnd:       end,
	}, nil
}

func (r *GormAnalyticsRepository) sumAmount(ctx context.Context, userID uuid.UUID, txType finance.TransactionType, status finance.TransactionStatus, start, end *time.Time) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Model(&finance.Transaction{}).
		Where("user_id = ? AND transaction_type = ? AND status = ?", userID, txType, status)
	if start != nil {
		query = query.Where("transaction_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("transaction_date <= ?", *end)
	}

	var total decimal.NullDecimal
	if err := query.Select("SUM(amount)").Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

type categoryRow struct {
	ID               uuid.UUID
	Name             string
	CategoryType     finance.CategoryType
	TotalAmount      decimal.Decimal
	TransactionCount int64
}

// SummarizeByCategory groups completed period activity per category
func (r *GormAnalyticsRepository) SummarizeByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]finance.CategorySummary, error) {
	var rows []categoryRow
	err := r.db.WithContext(ctx).
		Table("financial_categories").
		Select(`financial_categories.id,
			financial_categories.name,
			financial_categories.category_type,
			SUM(financial_transactions.amount) AS total_amount,
			COUNT(financial_transactions.id) AS transaction_count`).
		Joins("JOIN financial_transactions ON financial_transactions.category_id = financial_categories.id").
		Where("financial_transactions.user_id = ?", userID).
		Where("financial_transactions.status = ?", finance.TransactionCompleted).
		Where("financial_transactions.transaction_date >= ? AND financial_transactions.transaction_date <= ?", start, end).
		Group("financial_categories.id, financial_categories.name, financial_categories.category_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	grandTotal := decimal.Zero
	for _, row := range rows {
		grandTotal = grandTotal.Add(row.TotalAmount)
	}

	hundred := decimal.NewFromInt(100)
	summaries := make([]finance.CategorySummary, len(rows))
	for i, row := range rows {
		percentage := decimal.Zero
		if grandTotal.IsPositive() {
			percentage = row.TotalAmount.Div(grandTotal).Mul(hundred)
		}
		summaries[i] = finance.CategorySummary{
			CategoryID:        row.ID,
			CategoryName:      row.Name,
			CategoryType:      row.CategoryType,
			TotalAmount:       row.TotalAmount,
			TransactionCount:  row.TransactionCount,
			PercentageOfTotal: percentage,
		}
	}
	return summaries, nil
}

// MonthlyTrends buckets the last months*30 days of completed activity
// by calendar month, oldest first. Bucketing happens in Go so the
// query stays portable across drivers.
func (r *GormAnalyticsRepository) MonthlyTrends(ctx context.Context, userID uuid.UUID, months int) ([]finance.MonthlyTrend, error) {
	if months <= 0 {
		months = 12
	}
	windowStart := time.Now().AddDate(0, 0, -months*30)

	var transactions []finance.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND transaction_date >= ?",
			userID, finance.TransactionCompleted, windowStart).
		Find(&transactions).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
		month    time.Month
		year     int
	}
	buckets := make(map[string]*bucket)
	for _, tx := range transactions {
		key := fmt.Sprintf("%04d-%02d", tx.TransactionDate.Year(), int(tx.TransactionDate.Month()))
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				income:   decimal.Zero,
				expenses: decimal.Zero,
				month:    tx.TransactionDate.Month(),
				year:     tx.TransactionDate.Year(),
			}
			buckets[key] = b
		}
		if tx.TransactionType == finance.TransactionIncome {
			b.income = b.income.Add(tx.Amount)
		} else {
			b.expenses = b.expenses.Add(tx.Amount)
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	trends := make([]finance.MonthlyTrend, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		trends = append(trends, finance.MonthlyTrend{
			Month:    fmt.Sprintf("%02d", int(b.month)),
			Year:     b.year,
			Income:   b.income,
			Expenses: b.expenses,
			Net:      b.income.Sub(b.expenses),
		})
	}
	return trends, nil
}

var _ finance.AnalyticsRepository = (*GormAnalyticsRepository)(nil)
