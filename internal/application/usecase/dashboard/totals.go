// Package dashboard contains the financial summary engine and dashboard use cases.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// TypeAmount is the absolute total of one classification tag.
type TypeAmount struct {
	Type   entity.TransactionType
	Amount decimal.Decimal
}

// CalculateTotals sums income and expenses. SavingsRate is floored at zero
// and is zero when there is no income.
func CalculateTotals(transactions []entity.Transaction) entity.Totals {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range transactions {
		switch {
		case tx.IsIncome():
			income = income.Add(tx.Amount)
		case tx.IsExpense():
			expenses = expenses.Add(tx.Amount.Abs())
		}
	}

	balance := income.Sub(expenses)
	savingsRate := 0
	if income.IsPositive() {
		savingsRate = max(0, valueobject.Percent(balance, income))
	}

	return entity.Totals{
		Income:      income,
		Expenses:    expenses,
		Balance:     balance,
		SavingsRate: savingsRate,
	}
}

// CategoryBreakdown sums absolute expense amounts per category, in order of
// first appearance. Blank categories fall into "Other".
func CategoryBreakdown(transactions []entity.Transaction) []entity.CategoryAmount {
	breakdown := []entity.CategoryAmount{}
	index := make(map[string]int)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		category := tx.CategoryOrOther()
		i, ok := index[category]
		if !ok {
			i = len(breakdown)
			index[category] = i
			breakdown = append(breakdown, entity.CategoryAmount{Category: category, Amount: decimal.Zero})
		}
		breakdown[i].Amount = breakdown[i].Amount.Add(tx.Amount.Abs())
	}
	return breakdown
}

// HighestCategory returns the largest bucket, or nil for an empty breakdown.
// Ties go to the earlier bucket.
func HighestCategory(breakdown []entity.CategoryAmount) *entity.CategoryAmount {
	var highest *entity.CategoryAmount
	for i := range breakdown {
		if highest == nil || breakdown[i].Amount.GreaterThan(highest.Amount) {
			highest = &breakdown[i]
		}
	}
	if highest == nil {
		return nil
	}
	result := *highest
	return &result
}

// TypeBreakdown sums absolute amounts per classification tag. All four tags
// are always present; unknown tags are ignored.
func TypeBreakdown(transactions []entity.Transaction) []TypeAmount {
	totals := make(map[entity.TransactionType]decimal.Decimal, len(entity.TransactionTypes))
	for _, tx := range transactions {
		if !tx.Type.IsValid() {
			continue
		}
		totals[tx.Type] = totals[tx.Type].Add(tx.Amount.Abs())
	}

	breakdown := make([]TypeAmount, 0, len(entity.TransactionTypes))
	for _, t := range entity.TransactionTypes {
		amount, ok := totals[t]
		if !ok {
			amount = decimal.Zero
		}
		breakdown = append(breakdown, TypeAmount{Type: t, Amount: amount})
	}
	return breakdown
}
