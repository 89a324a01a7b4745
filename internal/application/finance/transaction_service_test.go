package finance

import (
	"context"
	"testing"
	"time"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLedgerRepository is a mock implementation of finance.LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

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
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockLedgerRepository) Amend(ctx context.Context, userID, id uuid.UUID, patch finance.TransactionPatch) (*finance.Transaction, error) {
	args := m.Called(ctx, userID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) Reverse(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of finance.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*finance.Category, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, userID uuid.UUID, categoryType *finance.CategoryType) ([]finance.Category, error) {
	args := m.Called(ctx, userID, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *finance.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockAnalyticsRepository is a mock implementation of finance.AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

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

func newTransactionService() (*TransactionService, *MockLedgerRepository, *MockCategoryRepository, *MockAnalyticsRepository) {
	ledgerRepo := new(MockLedgerRepository)
	categoryRepo := new(MockCategoryRepository)
	analyticsRepo := new(MockAnalyticsRepository)
	return NewTransactionService(ledgerRepo, categoryRepo, analyticsRepo), ledgerRepo, categoryRepo, analyticsRepo
}

func TestTransactionService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("posts a completed income entry", func(t *testing.T) {
		service, ledgerRepo, _, _ := newTransactionService()

		ledgerRepo.On("Post", ctx, mock.AnythingOfType("*finance.Transaction")).Return(nil)

		resp, err := service.Create(ctx, userID, CreateTransactionRequest{
			AccountID:       accountID,
			TransactionType: "income",
			Amount:          decimal.NewFromInt(25000),
			Description:     "Sinal do show de Trindade",
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, accountID, resp.AccountID)
	})

	t.Run("unknown category is a relationship violation", func(t *testing.T) {
		service, ledgerRepo, categoryRepo, _ := newTransactionService()

		categoryID := uuid.New()
		categoryRepo.On("FindByID", ctx, userID, categoryID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, userID, CreateTransactionRequest{
			AccountID:       accountID,
			CategoryID:      &categoryID,
			TransactionType: "income",
			Amount:          decimal.NewFromInt(25000),
			Description:     "Sinal do show de Trindade",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RELATIONSHIP_VIOLATION", domainErr.Code)
		ledgerRepo.AssertNotCalled(t, "Post", mock.Anything, mock.Anything)
	})

	t.Run("zero amount is rejected before posting", func(t *testing.T) {
		service, ledgerRepo, _, _ := newTransactionService()

		_, err := service.Create(ctx, userID, CreateTransactionRequest{
			AccountID:       accountID,
			TransactionType: "expense",
			Amount:          decimal.Zero,
			Description:     "Combustível",
		})
		require.Error(t, err)
		ledgerRepo.AssertNotCalled(t, "Post", mock.Anything, mock.Anything)
	})
}

func TestTransactionService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("builds the patch from changed fields only", func(t *testing.T) {
		service, ledgerRepo, _, _ := newTransactionService()

		transactionID := uuid.New()
		amended, err := finance.NewTransaction(userID, uuid.New(), finance.TransactionExpense,
			decimal.NewFromInt(1200), "Hospedagem da equipe", time.Now())
		require.NoError(t, err)

		newAmount := decimal.NewFromInt(1200)
		expectedType := finance.TransactionExpense
		ledgerRepo.On("Amend", ctx, userID, transactionID, mock.MatchedBy(func(p finance.TransactionPatch) bool {
			return p.Amount != nil && p.Amount.Equal(newAmount) &&
				p.TransactionType != nil && *p.TransactionType == expectedType &&
				p.Description == nil && p.AccountID == nil
		})).Return(amended, nil)

		transactionType := "expense"
		resp, err := service.Update(ctx, userID, transactionID, UpdateTransactionRequest{
			TransactionType: &transactionType,
			Amount:          &newAmount,
		})
		require.NoError(t, err)
		assert.Equal(t, "expense", resp.TransactionType)
	})

	t.Run("non-positive amount never reaches the ledger", func(t *testing.T) {
		service, ledgerRepo, _, _ := newTransactionService()

		badAmount := decimal.NewFromInt(-10)
		_, err := service.Update(ctx, userID, uuid.New(), UpdateTransactionRequest{Amount: &badAmount})
		require.Error(t, err)
		ledgerRepo.AssertNotCalled(t, "Amend", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTransactionService_Summary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("defaults the period to the current month", func(t *testing.T) {
		service, _, _, analyticsRepo := newTransactionService()

		now := time.Now().UTC()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

		analyticsRepo.On("Summarize", ctx, userID, monthStart, mock.AnythingOfType("time.Time")).
			Return(&finance.Summary{PeriodStart: monthStart}, nil)

		summary, err := service.Summary(ctx, userID, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, monthStart, summary.PeriodStart)
	})

	t.Run("clamps the trend window", func(t *testing.T) {
		service, _, _, analyticsRepo := newTransactionService()

		analyticsRepo.On("MonthlyTrends", ctx, userID, 6).Return([]finance.MonthlyTrend{}, nil)
		analyticsRepo.On("MonthlyTrends", ctx, userID, 24).Return([]finance.MonthlyTrend{}, nil)

		_, err := service.MonthlyTrends(ctx, userID, 0)
		require.NoError(t, err)
		_, err = service.MonthlyTrends(ctx, userID, 48)
		require.NoError(t, err)
		analyticsRepo.AssertExpectations(t)
	})
}
