package finance

import (
	"time"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest represents a request to open a financial account
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	AccountType string `json:"account_type" binding:"required,oneof=checking savings credit_card cash investment"`
}

// UpdateAccountRequest renames an account or changes its type
type UpdateAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	AccountType *string `json:"account_type" binding:"omitempty,oneof=checking savings credit_card cash investment"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	AccountType string          `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToAccountResponse converts a domain account to a response DTO
func ToAccountResponse(account *finance.Account) *AccountResponse {
	return &AccountResponse{
		ID:          account.ID,
		Name:        account.Name,
		AccountType: string(account.AccountType),
		Balance:     account.Balance,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	CategoryType string  `json:"category_type" binding:"required,oneof=income expense"`
	Color        *string `json:"color" binding:"omitempty,max=7"`
	Icon         *string `json:"icon" binding:"omitempty,max=50"`
}

// UpdateCategoryRequest represents a partial update to a category
type UpdateCategoryRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=255"`
	CategoryType *string `json:"category_type" binding:"omitempty,oneof=income expense"`
	Color        *string `json:"color" binding:"omitempty,max=7"`
	Icon         *string `json:"icon" binding:"omitempty,max=50"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryType string    `json:"category_type"`
	Color        *string   `json:"color"`
	Icon         *string   `json:"icon"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(category *finance.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:           category.ID,
		Name:         category.Name,
		CategoryType: string(category.CategoryType),
		Color:        category.Color,
		Icon:         category.Icon,
		CreatedAt:    category.CreatedAt,
	}
}

// CreateTransactionRequest represents a request to post a ledger entry
type CreateTransactionRequest struct {
	AccountID       uuid.UUID       `json:"account_id" binding:"required"`
	CategoryID      *uuid.UUID      `json:"category_id"`
	EventID         *uuid.UUID      `json:"event_id"`
	ContractorID    *uuid.UUID      `json:"contractor_id"`
	TransactionType string          `json:"transaction_type" binding:"required,oneof=income expense"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     string          `json:"description" binding:"required,min=1,max=500"`
	TransactionDate time.Time       `json:"transaction_date"`
	DueDate         *time.Time      `json:"due_date"`
	Status          *string         `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// UpdateTransactionRequest amends a posted ledger entry. Nil fields
// stay untouched.
type UpdateTransactionRequest struct {
	AccountID       *uuid.UUID       `json:"account_id"`
	CategoryID      *uuid.UUID       `json:"category_id"`
	EventID         *uuid.UUID       `json:"event_id"`
	ContractorID    *uuid.UUID       `json:"contractor_id"`
	TransactionType *string          `json:"transaction_type" binding:"omitempty,oneof=income expense"`
	Amount          *decimal.Decimal `json:"amount"`
	Description     *string          `json:"description" binding:"omitempty,min=1,max=500"`
	TransactionDate *time.Time       `json:"transaction_date"`
	DueDate         *time.Time       `json:"due_date"`
	Status          *string          `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// TransactionListFilter narrows transaction listings
type TransactionListFilter struct {
	AccountID       *uuid.UUID `form:"account_id"`
	CategoryID      *uuid.UUID `form:"category_id"`
	TransactionType *string    `form:"transaction_type" binding:"omitempty,oneof=income expense"`
	StartDate       *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate         *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	AccountID       uuid.UUID       `json:"account_id"`
	CategoryID      *uuid.UUID      `json:"category_id"`
	EventID         *uuid.UUID      `json:"event_id"`
	ContractorID    *uuid.UUID      `json:"contractor_id"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transaction_date"`
	DueDate         *time.Time      `json:"due_date"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToTransactionResponse converts a domain transaction to a response DTO
func ToTransactionResponse(transaction *finance.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              transaction.ID,
		AccountID:       transaction.AccountID,
		CategoryID:      transaction.CategoryID,
		EventID:         transaction.EventID,
		ContractorID:    transaction.ContractorID,
		TransactionType: string(transaction.TransactionType),
		Amount:          transaction.Amount,
		Description:     transaction.Description,
		TransactionDate: transaction.TransactionDate,
		DueDate:         transaction.DueDate,
		Status:          string(transaction.Status),
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}

// CreateGoalRequest represents a request to create a savings goal
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=255"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	TargetDate   *time.Time      `json:"target_date"`
	CategoryID   *uuid.UUID      `json:"category_id"`
}

// UpdateGoalRequest represents a partial update to a goal
type UpdateGoalRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=255"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	TargetDate    *time.Time       `json:"target_date"`
	IsActive      *bool            `json:"is_active"`
}

// GoalResponse represents a goal in API responses
type GoalResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    *time.Time      `json:"target_date"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToGoalResponse converts a domain goal to a response DTO
func ToGoalResponse(goal *finance.Goal) *GoalResponse {
	return &GoalResponse{
		ID:            goal.ID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate,
		CategoryID:    goal.CategoryID,
		IsActive:      goal.IsActive,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// CreateBudgetRequest represents a request to create a spending budget
type CreateBudgetRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=255"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	AlertThreshold *int            `json:"alert_threshold" binding:"omitempty,min=1,max=100"`
	PeriodStart    time.Time       `json:"period_start" binding:"required"`
	PeriodEnd      time.Time       `json:"period_end" binding:"required"`
	CategoryID     *uuid.UUID      `json:"category_id"`
}

// UpdateBudgetRequest represents a partial update to a budget
type UpdateBudgetRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Amount         *decimal.Decimal `json:"amount"`
	SpentAmount    *decimal.Decimal `json:"spent_amount"`
	AlertThreshold *int             `json:"alert_threshold" binding:"omitempty,min=1,max=100"`
	IsActive       *bool            `json:"is_active"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	SpentAmount    decimal.Decimal `json:"spent_amount"`
	AlertThreshold int             `json:"alert_threshold"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	CategoryID     *uuid.UUID      `json:"category_id"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToBudgetResponse converts a domain budget to a response DTO
func ToBudgetResponse(budget *finance.Budget) *BudgetResponse {
	return &BudgetResponse{
		ID:             budget.ID,
		Name:           budget.Name,
		Amount:         budget.Amount,
		SpentAmount:    budget.SpentAmount,
		AlertThreshold: budget.AlertThreshold,
		PeriodStart:    budget.PeriodStart,
		PeriodEnd:      budget.PeriodEnd,
		CategoryID:     budget.CategoryID,
		IsActive:       budget.IsActive,
		CreatedAt:      budget.CreatedAt,
		UpdatedAt:      budget.UpdatedAt,
	}
}
