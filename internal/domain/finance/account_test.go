package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	userID := uuid.New()

	t.Run("creates account with zero balance", func(t *testing.T) {
		account, err := NewAccount(userID, "Conta Corrente", AccountChecking)
		require.NoError(t, err)
		assert.Equal(t, userID, account.UserID)
		assert.True(t, account.Balance.IsZero())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewAccount(userID, "", AccountChecking)
		require.Error(t, err)
	})

	t.Run("fails with unknown account type", func(t *testing.T) {
		_, err := NewAccount(userID, "Conta", "offshore")
		require.Error(t, err)
	})
}

func TestAccountApplyAndReverse(t *testing.T) {
	userID := uuid.New()
	account, err := NewAccount(userID, "Caixa", AccountCash)
	require.NoError(t, err)

	account.Apply(TransactionIncome, decimal.NewFromInt(1000))
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(1000)))

	account.Apply(TransactionExpense, decimal.NewFromInt(250))
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(750)))

	account.Reverse(TransactionExpense, decimal.NewFromInt(250))
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(1000)))

	account.Reverse(TransactionIncome, decimal.NewFromInt(1000))
	assert.True(t, account.Balance.IsZero())
}

func TestNewTransaction(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("defaults to completed status and current date", func(t *testing.T) {
		tx, err := NewTransaction(userID, accountID, TransactionIncome, decimal.NewFromInt(500), "Cachê show", time.Time{})
		require.NoError(t, err)
		assert.Equal(t, TransactionCompleted, tx.Status)
		assert.False(t, tx.TransactionDate.IsZero())
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewTransaction(userID, accountID, TransactionIncome, decimal.Zero, "Cachê", time.Time{})
		require.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewTransaction(userID, accountID, TransactionExpense, decimal.NewFromInt(-10), "Combustível", time.Time{})
		require.Error(t, err)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewTransaction(userID, accountID, TransactionExpense, decimal.NewFromInt(10), "", time.Time{})
		require.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewTransaction(userID, accountID, "transfer", decimal.NewFromInt(10), "PIX", time.Time{})
		require.Error(t, err)
	})
}
