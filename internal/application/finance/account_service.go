package finance

import (
	"context"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountService handles financial account operations
type AccountService struct {
	accountRepo finance.AccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo finance.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// Create opens a new account with a zero balance
func (s *AccountService) Create(ctx context.Context, userID uuid.UUID, req CreateAccountRequest) (*AccountResponse, error) {
	account, err := finance.NewAccount(userID, req.Name, finance.AccountType(req.AccountType))
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	return ToAccountResponse(account), nil
}

// GetByID retrieves an account by ID
func (s *AccountService) GetByID(ctx context.Context, userID, id uuid.UUID) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToAccountResponse(account), nil
}

// List retrieves the user's accounts
func (s *AccountService) List(ctx context.Context, userID uuid.UUID, page shared.Page) ([]AccountResponse, error) {
	accounts, err := s.accountRepo.FindAll(ctx, userID, page.Normalize())
	if err != nil {
		return nil, err
	}

	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = *ToAccountResponse(&accounts[i])
	}
	return responses, nil
}

// Update renames an account or changes its type. The balance is never
// writable here; only ledger operations move it.
func (s *AccountService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateAccountRequest) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
		}
		account.Name = *req.Name
		account.Touch()
	}
	if req.AccountType != nil {
		accountType := finance.AccountType(*req.AccountType)
		if !accountType.IsValid() {
			return nil, shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Invalid account type")
		}
		account.AccountType = accountType
		account.Touch()
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	return ToAccountResponse(account), nil
}

// Delete removes an account
func (s *AccountService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.accountRepo.Delete(ctx, userID, id)
}
