package finance

import (
	"time"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget caps spending for a category over a period
type Budget struct {
	shared.TenantEntity
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	SpentAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"spent_amount"`
	AlertThreshold int             `gorm:"not null;default:80" json:"alert_threshold"`
	PeriodStart    time.Time       `gorm:"type:date;not null" json:"period_start"`
	PeriodEnd      time.Time       `gorm:"type:date;not null" json:"period_end"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid" json:"category_id"`
	IsActive       bool            `gorm:"not null;default:true" json:"is_active"`
}

// TableName returns the table name for GORM
func (Budget) TableName() string {
	return "financial_budgets"
}

// NewBudget creates a new spending budget
func NewBudget(userID uuid.UUID, name string, amount decimal.Decimal, periodStart, periodEnd time.Time) (*Budget, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Budget name cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Budget amount must be positive")
	}
	if periodEnd.Before(periodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Budget period end cannot precede its start")
	}
	return &Budget{
		TenantEntity:   shared.NewTenantEntity(userID),
		Name:           name,
		Amount:         amount,
		AlertThreshold: 80,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		IsActive:       true,
	}, nil
}
