// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the tracking window of a budget.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
)

// IsValid reports whether p is a known budget period.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetPeriodMonthly || p == BudgetPeriodWeekly
}

// Budget represents a spending limit for one category.
// Spent is derived from transactions and never stored.
type Budget struct {
	ID       int64
	UserID   uuid.UUID
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
	Period   BudgetPeriod
}

// NewBudget creates a new Budget entity with zero spend.
func NewBudget(userID uuid.UUID, category string, limit decimal.Decimal, period BudgetPeriod) *Budget {
	if period == "" {
		period = BudgetPeriodMonthly
	}
	return &Budget{
		UserID:   userID,
		Category: category,
		Limit:    limit,
		Spent:    decimal.Zero,
		Period:   period,
	}
}

// DefaultBudgets returns the budgets seeded for a user that has none yet.
func DefaultBudgets(userID uuid.UUID) []*Budget {
	return []*Budget{
		NewBudget(userID, "Food & Dining", decimal.NewFromInt(8000), BudgetPeriodMonthly),
		NewBudget(userID, "Shopping", decimal.NewFromInt(5000), BudgetPeriodMonthly),
		NewBudget(userID, "Entertainment", decimal.NewFromInt(2000), BudgetPeriodMonthly),
		NewBudget(userID, "Transport", decimal.NewFromInt(3000), BudgetPeriodMonthly),
		NewBudget(userID, "Bills & Utilities", decimal.NewFromInt(5000), BudgetPeriodMonthly),
	}
}
