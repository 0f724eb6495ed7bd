// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Totals holds the aggregate income/expense figures for a transaction list.
type Totals struct {
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Balance     decimal.Decimal
	SavingsRate int
}

// CategoryAmount is the expense total of one category.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// DaySpending is the expense total of one weekday bucket.
type DaySpending struct {
	Day    string
	Amount decimal.Decimal
}

// SnapshotTransaction is the reduced transaction view handed to the AI
// collaborator.
type SnapshotTransaction struct {
	Name     string
	Category string
	Amount   decimal.Decimal
	Date     string
}

// GoalProgress is a goal with its derived completion percentage.
type GoalProgress struct {
	Name     string
	Current  decimal.Decimal
	Target   decimal.Decimal
	Progress int
}

// BudgetStatus is a budget with its derived usage percentage.
type BudgetStatus struct {
	Category    string
	Limit       decimal.Decimal
	Spent       decimal.Decimal
	PercentUsed int
}

// FinancialSnapshot is the read-only summary consumed by the AI collaborator.
// It never carries raw transactions beyond the bounded Recent window.
type FinancialSnapshot struct {
	Totals          Totals
	HighestCategory *CategoryAmount
	TopDay          *DaySpending
	Recent          []SnapshotTransaction
	Goals           []GoalProgress
	Budgets         []BudgetStatus
}

// AIInsight is the structured advice returned by the AI collaborator.
type AIInsight struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	Warnings        []string `json:"warnings"`
	Opportunities   []string `json:"opportunities"`
}
