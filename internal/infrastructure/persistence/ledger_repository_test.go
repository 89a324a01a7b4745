package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLedger(t *testing.T) (*GormLedgerRepository, *GormAccountRepository, uuid.UUID, *finance.Account) {
	t.Helper()
	db := setupTestDB(t)
	ledger := NewGormLedgerRepository(db)
	accounts := NewGormAccountRepository(db)
	userID := uuid.New()

	account, err := finance.NewAccount(userID, "Conta Corrente", finance.AccountChecking)
	require.NoError(t, err)
	require.NoError(t, accounts.Save(context.Background(), account))

	return ledger, accounts, userID, account
}

func TestLedgerRepository_Post(t *testing.T) {
	ledger, accounts, userID, account := setupLedger(t)
	ctx := context.Background()

	t.Run("income raises the balance", func(t *testing.T) {
		tx, err := finance.NewTransaction(userID, account.ID, finance.TransactionIncome,
			decimal.NewFromInt(5000), "Cachê show Goiânia", time.Now())
		require.NoError(t, err)
		require.NoError(t, ledger.Post(ctx, tx))

		updated, err := accounts.FindByID(ctx, userID, account.ID)
		require.NoError(t, err)
		assert.True(t, updated.Balance.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("expense lowers the balance", func(t *testing.T) {
		tx, err := finance.NewTransaction(userID, account.ID, finance.TransactionExpense,
			decimal.NewFromInt(1200), "Transporte equipe", time.Now())
		require.NoError(t, err)
		require.NoError(t, ledger.Post(ctx, tx))

		updated, err := accounts.FindByID(ctx, userID, account.ID)
		require.NoError(t, err)
		assert.True(t, updated.Balance.Equal(decimal.NewFromInt(3800)))
	})

	t.Run("unknown account aborts the post", func(t *testing.T) {
		tx, err := finance.NewTransaction(userID, uuid.New(), finance.TransactionIncome,
			decimal.NewFromInt(100), "Cachê", time.Now())
		require.NoError(t, err)

		err = ledger.Post(ctx, tx)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RELATIONSHIP_VIOLATION", domainErr.Code)

		// Nothing was inserted
		list, err := ledger.FindAll(ctx, userID, finance.TransactionFilter{}, shared.DefaultPage())
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestLedgerRepository_Amend(t *testing.T) {
	ledger, accounts, userID, account := setupLedger(t)
	ctx := context.Background()

	tx, err := finance.NewTransaction(userID, account.ID, finance.TransactionIncome,
		decimal.NewFromInt(1000), "Sinal evento", time.Now())
	require.NoError(t, err)
	require.NoError(t, ledger.Post(ctx, tx))

	t.Run("amount change re-applies the effect", func(t *testing.T) {
		newAmount := decimal.NewFromInt(1500)
		amended, err := ledger.Amend(ctx, userID, tx.ID, finance.TransactionPatch{Amount: &newAmount})
		require.NoError(t, err)
		assert.True(t, amended.Amount.Equal(newAmount))

		updated, err := accounts.FindByID(ctx, userID, account.ID)
		require.NoError(t, err)
		assert.True(t, updated.Balance.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("account move shifts the effect between accounts", func(t *testing.T) {
		other, err := finance.NewAccount(userID, "Poupança", finance.AccountSavings)
		require.NoError(t, err)
		require.NoError(t, accounts.Save(ctx, other))

		_, err = ledger.Amend(ctx, userID, tx.ID, finance.TransactionPatch{AccountID: &other.ID})
		require.NoError(t, err)

		source, err := accounts.FindByID(ctx, userID, account.ID)
		require.NoError(t, err)
		assert.True(t, source.Balance.IsZero())

		target, err := accounts.FindByID(ctx, userID, other.ID)
		require.NoError(t, err)
		assert.True(t, target.Balance.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("type flip reverses the direction", func(t *testing.T) {
		ledger2, accounts2, user2, acc2 := setupLedger(t)

		tx2, err := finance.NewTransaction(user2, acc2.ID, finance.TransactionIncome,
			decimal.NewFromInt(200), "Estorno teste", time.Now())
		require.NoError(t, err)
		require.NoError(t, ledger2.Post(ctx, tx2))

		flipped := finance.TransactionExpense
		_, err = ledger2.Amend(ctx, user2, tx2.ID, finance.TransactionPatch{TransactionType: &flipped})
		require.NoError(t, err)

		updated, err := accounts2.FindByID(ctx, user2, acc2.ID)
		require.NoError(t, err)
		assert.True(t, updated.Balance.Equal(decimal.NewFromInt(-200)))
	})

	t.Run("missing transaction returns not found", func(t *testing.T) {
		_, err := ledger.Amend(ctx, userID, uuid.New(), finance.TransactionPatch{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestLedgerRepository_Reverse(t *testing.T) {
	ledger, accounts, userID, account := setupLedger(t)
	ctx := context.Background()

	tx, err := finance.NewTransaction(userID, account.ID, finance.TransactionExpense,
		decimal.NewFromInt(800), "Aluguel som", time.Now())
	require.NoError(t, err)
	require.NoError(t, ledger.Post(ctx, tx))

	require.NoError(t, ledger.Reverse(ctx, userID, tx.ID))

	updated, err := accounts.FindByID(ctx, userID, account.ID)
	require.NoError(t, err)
	assert.True(t, updated.Balance.IsZero())

	_, err = ledger.FindByID(ctx, userID, tx.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAnalyticsRepository_Summarize(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewGormLedgerRepository(db)
	accounts := NewGormAccountRepository(db)
	analytics := NewGormAnalyticsRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	account, err := finance.NewAccount(userID, "Caixa", finance.AccountCash)
	require.NoError(t, err)
	require.NoError(t, accounts.Save(ctx, account))

	now := time.Now()
	post := func(txType finance.TransactionType, amount int64, status finance.TransactionStatus) {
		tx, err := finance.NewTransaction(userID, account.ID, txType,
			decimal.NewFromInt(amount), "lançamento", now)
		require.NoError(t, err)
		tx.Status = status
		require.NoError(t, ledger.Post(ctx, tx))
	}

	post(finance.TransactionIncome, 3000, finance.TransactionCompleted)
	post(finance.TransactionIncome, 2000, finance.TransactionCompleted)
	post(finance.TransactionExpense, 1000, finance.TransactionCompleted)
	post(finance.TransactionIncome, 500, finance.TransactionPending)
	post(finance.TransactionExpense, 300, finance.TransactionPending)

	summary, err := analytics.Summarize(ctx, userID, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(5000)))
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.NetIncome.Equal(decimal.NewFromInt(4000)))
	assert.True(t, summary.PendingIncome.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.PendingExpenses.Equal(decimal.NewFromInt(300)))
}

func TestAnalyticsRepository_MonthlyTrends(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewGormLedgerRepository(db)
	accounts := NewGormAccountRepository(db)
	analytics := NewGormAnalyticsRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	account, err := finance.NewAccount(userID, "Caixa", finance.AccountCash)
	require.NoError(t, err)
	require.NoError(t, accounts.Save(ctx, account))

	now := time.Now()
	tx, err := finance.NewTransaction(userID, account.ID, finance.TransactionIncome,
		decimal.NewFromInt(1000), "cachê", now)
	require.NoError(t, err)
	require.NoError(t, ledger.Post(ctx, tx))

	trends, err := analytics.MonthlyTrends(ctx, userID, 3)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, now.Year(), trends[0].Year)
	assert.True(t, trends[0].Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, trends[0].Net.Equal(decimal.NewFromInt(1000)))
}
