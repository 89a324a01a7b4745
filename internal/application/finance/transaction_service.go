package finance

import (
	"context"
	"errors"
	"time"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionService posts, amends and reverses ledger entries and
// serves the reporting queries built on them.
type TransactionService struct {
	ledgerRepo    finance.LedgerRepository
	categoryRepo  finance.CategoryRepository
	analyticsRepo finance.AnalyticsRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	ledgerRepo finance.LedgerRepository,
	categoryRepo finance.CategoryRepository,
	analyticsRepo finance.AnalyticsRepository,
) *TransactionService {
	return &TransactionService{
		ledgerRepo:    ledgerRepo,
		categoryRepo:  categoryRepo,
		analyticsRepo: analyticsRepo,
	}
}

// Create posts a ledger entry, moving the target account's balance in
// the same database transaction.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req CreateTransactionRequest) (*TransactionResponse, error) {
	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, userID, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	transaction, err := finance.NewTransaction(userID, req.AccountID,
		finance.TransactionType(req.TransactionType), req.Amount, req.Description, req.TransactionDate)
	if err != nil {
		return nil, err
	}
	transaction.CategoryID = req.CategoryID
	transaction.EventID = req.EventID
	transaction.ContractorID = req.ContractorID
	transaction.DueDate = req.DueDate
	if req.Status != nil {
		status := finance.TransactionStatus(*req.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid transaction status")
		}
		transaction.Status = status
	}

	if err := s.ledgerRepo.Post(ctx, transaction); err != nil {
		return nil, err
	}

	return ToTransactionResponse(transaction), nil
}

// GetByID retrieves a transaction by ID
func (s *TransactionService) GetByID(ctx context.Context, userID, id uuid.UUID) (*TransactionResponse, error) {
	transaction, err := s.ledgerRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToTransactionResponse(transaction), nil
}

// List retrieves transactions matching the filter, newest date first
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, filter TransactionListFilter, page shared.Page) ([]TransactionResponse, error) {
	domainFilter := finance.TransactionFilter{
		AccountID:  filter.AccountID,
		CategoryID: filter.CategoryID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
	}
	if filter.TransactionType != nil {
		t := finance.TransactionType(*filter.TransactionType)
		domainFilter.TransactionType = &t
	}

	transactions, err := s.ledgerRepo.FindAll(ctx, userID, domainFilter, page.Normalize())
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = *ToTransactionResponse(&transactions[i])
	}
	return responses, nil
}

// Update amends a posted transaction. The old balance effect is rolled
// back and the new one applied atomically, even across accounts.
func (s *TransactionService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateTransactionRequest) (*TransactionResponse, error) {
	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, userID, *req.CategoryID); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}
	if req.Description != nil && *req.Description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Transaction description cannot be empty")
	}

	patch := finance.TransactionPatch{
		AccountID:       req.AccountID,
		CategoryID:      req.CategoryID,
		EventID:         req.EventID,
		ContractorID:    req.ContractorID,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
		DueDate:         req.DueDate,
	}
	if req.TransactionType != nil {
		t := finance.TransactionType(*req.TransactionType)
		if !t.IsValid() {
			return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be income or expense")
		}
		patch.TransactionType = &t
	}
	if req.Status != nil {
		status := finance.TransactionStatus(*req.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid transaction status")
		}
		patch.Status = &status
	}

	transaction, err := s.ledgerRepo.Amend(ctx, userID, id, patch)
	if err != nil {
		return nil, err
	}

	return ToTransactionResponse(transaction), nil
}

// Delete reverses a transaction's balance effect and removes it
func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.ledgerRepo.Reverse(ctx, userID, id)
}

// Summary totals completed activity in [start, end] plus all-time
// pending amounts. A zero period defaults to the current month.
func (s *TransactionService) Summary(ctx context.Context, userID uuid.UUID, start, end time.Time) (*finance.Summary, error) {
	start, end = normalizePeriod(start, end)
	return s.analyticsRepo.Summarize(ctx, userID, start, end)
}

// CategorySummary groups completed period activity per category
func (s *TransactionService) CategorySummary(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]finance.CategorySummary, error) {
	start, end = normalizePeriod(start, end)
	return s.analyticsRepo.SummarizeByCategory(ctx, userID, start, end)
}

// MonthlyTrends buckets recent completed activity by calendar month
func (s *TransactionService) MonthlyTrends(ctx context.Context, userID uuid.UUID, months int) ([]finance.MonthlyTrend, error) {
	if months <= 0 {
		months = 6
	}
	if months > 24 {
		months = 24
	}
	return s.analyticsRepo.MonthlyTrends(ctx, userID, months)
}

func (s *TransactionService) checkCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, userID, categoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewRelationshipViolation("Category")
		}
		return err
	}
	return nil
}

func normalizePeriod(start, end time.Time) (time.Time, time.Time) {
	now := time.Now().UTC()
	if start.IsZero() {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	if end.IsZero() {
		end = start.AddDate(0, 1, 0).Add(-time.Second)
	}
	return start, end
}
