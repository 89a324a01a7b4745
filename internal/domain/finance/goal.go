package finance

import (
	"time"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a savings target the user tracks progress toward
type Goal struct {
	shared.TenantEntity
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"current_amount"`
	TargetDate    *time.Time      `gorm:"type:date" json:"target_date"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid" json:"category_id"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
}

// TableName returns the table name for GORM
func (Goal) TableName() string {
	return "financial_goals"
}

// NewGoal creates a new savings goal
func NewGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal) (*Goal, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Goal name cannot be empty")
	}
	if !targetAmount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Goal target amount must be positive")
	}
	return &Goal{
		TenantEntity: shared.NewTenantEntity(userID),
		Name:         name,
		TargetAmount: targetAmount,
		IsActive:     true,
	}, nil
}
