// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// AlertType is the severity of a budget alert.
type AlertType string

const (
	AlertTypeWarning  AlertType = "warning"
	AlertTypeCritical AlertType = "critical"
	AlertTypeExceeded AlertType = "exceeded"
)

// BudgetAlert is a threshold crossing for one budget category.
type BudgetAlert struct {
	Category    string
	Limit       decimal.Decimal
	Spent       decimal.Decimal
	PercentUsed int
	Type        AlertType
}

// Remaining returns what is left of the budget; negative when exceeded.
func (a BudgetAlert) Remaining() decimal.Decimal {
	return a.Limit.Sub(a.Spent)
}
