package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLedgerRepository implements finance.LedgerRepository using GORM.
// Every balance-moving operation runs in a single database transaction
// so a transaction row and its account balance never diverge.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// FindByID finds a transaction by ID within a user's data
func (r *GormLedgerRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*finance.Transaction, error) {
	return findTransaction(r.db.WithContext(ctx), userID, id)
}

// FindAll lists transactions matching the filter, newest date first
func (r *GormLedgerRepository) FindAll(ctx context.Context, userID uuid.UUID, filter finance.TransactionFilter, page shared.Page) ([]finance.Transaction, error) {
	page = page.Normalize()
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.TransactionType != nil {
		query = query.Where("transaction_type = ?", *filter.TransactionType)
	}
	if filter.StartDate != nil {
		query = query.Where("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transaction_date <= ?", *filter.EndDate)
	}

	var transactions []finance.Transaction
	if err := query.
		Order("transaction_date DESC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// FindRecentlyCreated lists transactions created since the given time, newest first
func (r *GormLedgerRepository) FindRecentlyCreated(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]finance.Transaction, error) {
	var transactions []finance.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// Post inserts the transaction and applies its effect to the account balance
func (r *GormLedgerRepository) Post(ctx context.Context, transaction *finance.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, transaction.UserID, transaction.AccountID)
		if err != nil {
			return err
		}
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}
		account.Apply(transaction.TransactionType, transaction.Amount)
		return tx.Save(account).Error
	})
}

// Amend reverses the stored transaction's effect, applies the patch,
// then re-applies the new effect on the target account.
func (r *GormLedgerRepository) Amend(ctx context.Context, userID, id uuid.UUID, patch finance.TransactionPatch) (*finance.Transaction, error) {
	var amended *finance.Transaction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transaction, err := findTransaction(tx, userID, id)
		if err != nil {
			return err
		}

		oldAccount, err := lockAccount(tx, userID, transaction.AccountID)
		if err != nil {
			return err
		}
		oldAccount.Reverse(transaction.TransactionType, transaction.Amount)
		if err := tx.Save(oldAccount).Error; err != nil {
			return err
		}

		applyPatch(transaction, patch)
		transaction.Touch()

		newAccount := oldAccount
		if transaction.AccountID != oldAccount.ID {
			newAccount, err = lockAccount(tx, userID, transaction.AccountID)
			if err != nil {
				return err
			}
		}
		newAccount.Apply(transaction.TransactionType, transaction.Amount)
		if err := tx.Save(newAccount).Error; err != nil {
			return err
		}

		if err := tx.Save(transaction).Error; err != nil {
			return err
		}
		amended = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}
	return amended, nil
}

// Reverse undoes the transaction's balance effect and deletes it
func (r *GormLedgerRepository) Reverse(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transaction, err := findTransaction(tx, userID, id)
		if err != nil {
			return err
		}

		account, err := lockAccount(tx, userID, transaction.AccountID)
		if err != nil {
			return err
		}
		account.Reverse(transaction.TransactionType, transaction.Amount)
		if err := tx.Save(account).Error; err != nil {
			return err
		}

		return tx.Delete(&finance.Transaction{}, "user_id = ? AND id = ?", userID, id).Error
	})
}

func findTransaction(tx *gorm.DB, userID, id uuid.UUID) (*finance.Transaction, error) {
	var transaction finance.Transaction
	if err := tx.Where("user_id = ? AND id = ?", userID, id).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

// lockAccount loads an account inside the transaction, taking a row
// lock so concurrent postings serialize on the balance. A missing
// account aborts the whole ledger operation.
func lockAccount(tx *gorm.DB, userID, accountID uuid.UUID) (*finance.Account, error) {
	var account finance.Account
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND id = ?", userID, accountID).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewRelationshipViolation("account")
		}
		return nil, err
	}
	return &account, nil
}

func applyPatch(transaction *finance.Transaction, patch finance.TransactionPatch) {
	if patch.AccountID != nil {
		transaction.AccountID = *patch.AccountID
	}
	if patch.CategoryID != nil {
		transaction.CategoryID = patch.CategoryID
	}
	if patch.EventID != nil {
		transaction.EventID = patch.EventID
	}
	if patch.ContractorID != nil {
		transaction.ContractorID = patch.ContractorID
	}
	if patch.TransactionType != nil {
		transaction.TransactionType = *patch.TransactionType
	}
	if patch.Amount != nil {
		transaction.Amount = *patch.Amount
	}
	if patch.Description != nil {
		transaction.Description = *patch.Description
	}
	if patch.TransactionDate != nil {
		transaction.TransactionDate = *patch.TransactionDate
	}
	if patch.DueDate != nil {
		transaction.DueDate = patch.DueDate
	}
	if patch.Status != nil {
		transaction.Status = *patch.Status
	}
}

var _ finance.LedgerRepository = (*GormLedgerRepository)(nil)
