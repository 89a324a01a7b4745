package finance

import (
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies a financial account
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCreditCard AccountType = "credit_card"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
)

// IsValid checks if the account type is valid
func (t AccountType) IsValid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountCreditCard, AccountCash, AccountInvestment:
		return true
	}
	return false
}

// Account is a money holder whose balance is maintained by the ledger.
// The balance is never set directly by callers; only posting, amending
// and reversing transactions move it.
type Account struct {
	shared.TenantEntity
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	AccountType AccountType     `gorm:"type:varchar(20);not null" json:"account_type"`
	Balance     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"balance"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "financial_accounts"
}

// NewAccount creates a new account with a zero balance
func NewAccount(userID uuid.UUID, name string, accountType AccountType) (*Account, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Invalid account type")
	}
	return &Account{
		TenantEntity: shared.NewTenantEntity(userID),
		Name:         name,
		AccountType:  accountType,
		Balance:      decimal.Zero,
	}, nil
}

// Apply moves the balance by the signed effect of a transaction
func (a *Account) Apply(transactionType TransactionType, amount decimal.Decimal) {
	if transactionType == TransactionIncome {
		a.Balance = a.Balance.Add(amount)
	} else {
		a.Balance = a.Balance.Sub(amount)
	}
	a.Touch()
}

// Reverse undoes the balance effect of a previously applied transaction
func (a *Account) Reverse(transactionType TransactionType, amount decimal.Decimal) {
	if transactionType == TransactionIncome {
		a.Balance = a.Balance.Sub(amount)
	} else {
		a.Balance = a.Balance.Add(amount)
	}
	a.Touch()
}
