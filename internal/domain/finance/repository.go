package finance

import (
	"context"
	"time"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account persistence
type AccountRepository interface {
	// FindByID finds an account by ID within a user's data
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Account, error)

	// FindAll lists a user's accounts
	FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]Account, error)

	// Save creates or updates an account
	Save(ctx context.Context, account *Account) error

	// Delete removes an account; returns shared.ErrNotFound if absent
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by ID within a user's data
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Category, error)

	// FindAll lists a user's categories, optionally filtered by type
	FindAll(ctx context.Context, userID uuid.UUID, categoryType *CategoryType) ([]Category, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete removes a category; returns shared.ErrNotFound if absent
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// TransactionPatch carries the mutable transaction fields of an
// amendment. Nil pointers leave the field unchanged.
type TransactionPatch struct {
	AccountID       *uuid.UUID
	CategoryID      *uuid.UUID
	EventID         *uuid.UUID
	ContractorID    *uuid.UUID
	TransactionType *TransactionType
	Amount          *decimal.Decimal
	Description     *string
	TransactionDate *time.Time
	DueDate         *time.Time
	Status          *TransactionStatus
}

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	AccountID       *uuid.UUID
	CategoryID      *uuid.UUID
	TransactionType *TransactionType
	StartDate       *time.Time
	EndDate         *time.Time
}

// LedgerRepository persists transactions and keeps account balances
// consistent with them. Post, Amend and Reverse each run in a single
// database transaction; a missing or foreign account aborts the whole
// operation.
type LedgerRepository interface {
	// FindByID finds a transaction by ID within a user's data
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)

	// FindAll lists transactions matching the filter, newest date first
	FindAll(ctx context.Context, userID uuid.UUID, filter TransactionFilter, page shared.Page) ([]Transaction, error)

	// FindRecentlyCreated lists transactions created since the given
	// time, newest first, up to limit.
	FindRecentlyCreated(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]Transaction, error)

	// Post inserts the transaction and applies its effect to the
	// account balance.
	Post(ctx context.Context, transaction *Transaction) error

	// Amend reverses the stored transaction's effect on its current
	// account, applies the patch, re-applies the new effect on the
	// (possibly different) target account, and returns the updated row.
	Amend(ctx context.Context, userID, id uuid.UUID, patch TransactionPatch) (*Transaction, error)

	// Reverse undoes the transaction's balance effect and deletes it
	Reverse(ctx context.Context, userID, id uuid.UUID) error
}

// GoalRepository defines the interface for goal persistence
type GoalRepository interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Goal, error)
	FindAll(ctx context.Context, userID uuid.UUID, isActive *bool) ([]Goal, error)
	Save(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// BudgetRepository defines the interface for budget persistence
type BudgetRepository interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Budget, error)
	FindAll(ctx context.Context, userID uuid.UUID, isActive *bool) ([]Budget, error)
	Save(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
