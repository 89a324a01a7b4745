package finance

import (
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryType splits categories into the two sides of the ledger
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// IsValid checks if the category type is valid
func (t CategoryType) IsValid() bool {
	return t == CategoryIncome || t == CategoryExpense
}

// Category labels transactions for reporting
type Category struct {
	shared.TenantEntity
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	CategoryType CategoryType `gorm:"type:varchar(10);not null" json:"category_type"`
	Color        *string      `gorm:"type:varchar(7)" json:"color"`
	Icon         *string      `gorm:"type:varchar(50)" json:"icon"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "financial_categories"
}

// NewCategory creates a new transaction category
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if !categoryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY_TYPE", "Category type must be income or expense")
	}
	return &Category{
		TenantEntity: shared.NewTenantEntity(userID),
		Name:         name,
		CategoryType: categoryType,
	}, nil
}
