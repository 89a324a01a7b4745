package finance

import (
	"time"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType tells which direction money moved
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// IsValid checks if the transaction type is valid
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// TransactionStatus represents the settlement state of a transaction
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionCancelled TransactionStatus = "cancelled"
)

// IsValid checks if the transaction status is valid
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionPending, TransactionCompleted, TransactionCancelled:
		return true
	}
	return false
}

// Transaction is one ledger entry against an account
type Transaction struct {
	shared.TenantEntity
	AccountID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID      *uuid.UUID        `gorm:"type:uuid;index" json:"category_id"`
	EventID         *uuid.UUID        `gorm:"type:uuid;index" json:"event_id"`
	ContractorID    *uuid.UUID        `gorm:"type:uuid;index" json:"contractor_id"`
	TransactionType TransactionType   `gorm:"type:varchar(10);not null" json:"transaction_type"`
	Amount          decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description     string            `gorm:"type:varchar(500);not null" json:"description"`
	TransactionDate time.Time         `gorm:"type:date;not null;index" json:"transaction_date"`
	DueDate         *time.Time        `gorm:"type:date" json:"due_date"`
	Status          TransactionStatus `gorm:"type:varchar(10);not null;default:'completed'" json:"status"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "financial_transactions"
}

// NewTransaction creates a new ledger entry
func NewTransaction(userID, accountID uuid.UUID, transactionType TransactionType, amount decimal.Decimal, description string, transactionDate time.Time) (*Transaction, error) {
	if !transactionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be income or expense")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Transaction description cannot be empty")
	}
	if transactionDate.IsZero() {
		transactionDate = time.Now().UTC()
	}
	return &Transaction{
		TenantEntity:    shared.NewTenantEntity(userID),
		AccountID:       accountID,
		TransactionType: transactionType,
		Amount:          amount,
		Description:     description,
		TransactionDate: transactionDate,
		Status:          TransactionCompleted,
	}, nil
}
