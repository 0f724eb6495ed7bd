// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the spending classification tag set by the caller.
type TransactionType string

const (
	TransactionTypeEssentials TransactionType = "Essentials"
	TransactionTypeNeeds      TransactionType = "Needs"
	TransactionTypeWants      TransactionType = "Wants"
	TransactionTypeIncome     TransactionType = "Income"
)

// TransactionTypes lists every classification tag in display order.
var TransactionTypes = []TransactionType{
	TransactionTypeEssentials,
	TransactionTypeNeeds,
	TransactionTypeWants,
	TransactionTypeIncome,
}

// IsValid reports whether t is one of the known classification tags.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeEssentials, TransactionTypeNeeds, TransactionTypeWants, TransactionTypeIncome:
		return true
	}
	return false
}

// OtherCategory is the bucket used for transactions without a category.
const OtherCategory = "Other"

// TransactionCategories are the categories offered by the client. Any other
// free-text category is accepted as well.
var TransactionCategories = []string{
	"Food & Dining",
	"Shopping",
	"Housing",
	"Transport",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Income",
	OtherCategory,
}

// Transaction represents a single income or expense record.
type Transaction struct {
	ID       int64
	UserID   uuid.UUID
	Name     string
	Category string
	Amount   decimal.Decimal // Negative for expenses, positive for income
	Date     string          // Calendar date as supplied, parsed leniently
	Type     TransactionType
	// CreatedAt is bookkeeping for the persistence layer only.
	CreatedAt time.Time
}

// NewTransaction creates a new Transaction entity. The ID is assigned by the
// repository.
func NewTransaction(
	userID uuid.UUID,
	name string,
	category string,
	amount decimal.Decimal,
	date string,
	transactionType TransactionType,
) *Transaction {
	return &Transaction{
		UserID:    userID,
		Name:      name,
		Category:  category,
		Amount:    amount,
		Date:      date,
		Type:      transactionType,
		CreatedAt: time.Now().UTC(),
	}
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the transaction is income.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// CategoryOrOther returns the category, or OtherCategory when blank.
func (t Transaction) CategoryOrOther() string {
	if t.Category == "" {
		return OtherCategory
	}
	return t.Category
}
