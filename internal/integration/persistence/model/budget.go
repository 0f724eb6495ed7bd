// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// Spent is derived on read and has no column. A category is unique per user
// among rows that are not soft-deleted.
type BudgetModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category_active,where:deleted_at IS NULL"`
	Category  string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budgets_user_category_active,where:deleted_at IS NULL"`
	Limit     decimal.Decimal `gorm:"column:limit_amount;type:decimal(15,2);not null"`
	Period    string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:       m.ID,
		UserID:   m.UserID,
		Category: m.Category,
		Limit:    m.Limit,
		Spent:    decimal.Zero,
		Period:   entity.BudgetPeriod(m.Period),
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:       budget.ID,
		UserID:   budget.UserID,
		Category: budget.Category,
		Limit:    budget.Limit,
		Period:   string(budget.Period),
	}
}
