// Package budget contains budget aggregation, alerting and budget management use cases.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

var nearLimitRatio = decimal.NewFromFloat(0.8)

// Totals are the combined figures over every budget.
type Totals struct {
	TotalLimit  decimal.Decimal
	TotalSpent  decimal.Decimal
	Remaining   decimal.Decimal // May be negative
	PercentUsed int
}

// Summary is the aggregator output: budgets with Spent overlaid plus totals
// and status lists.
type Summary struct {
	Budgets    []entity.Budget
	Totals     Totals
	OverBudget []entity.Budget
	NearLimit  []entity.Budget
}

// Aggregate overlays current-period spend onto each budget. Monthly budgets
// count expenses in now's calendar month, weekly budgets count expenses in
// now's Monday-start week. Neither input slice is modified.
func Aggregate(transactions []entity.Transaction, budgets []entity.Budget, now time.Time) Summary {
	summary := Summary{
		Budgets:    make([]entity.Budget, 0, len(budgets)),
		OverBudget: []entity.Budget{},
		NearLimit:  []entity.Budget{},
		Totals: Totals{
			TotalLimit: decimal.Zero,
			TotalSpent: decimal.Zero,
			Remaining:  decimal.Zero,
		},
	}

	monthly := make(map[string]decimal.Decimal)
	weekly := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		date := valueobject.ParseDate(tx.Date, now)
		category := tx.CategoryOrOther()
		amount := tx.Amount.Abs()
		if valueobject.SameMonth(date, now) {
			monthly[category] = monthly[category].Add(amount)
		}
		if valueobject.SameWeek(date, now) {
			weekly[category] = weekly[category].Add(amount)
		}
	}

	for _, b := range budgets {
		spent := monthly[b.Category]
		if b.Period == entity.BudgetPeriodWeekly {
			spent = weekly[b.Category]
		}
		b.Spent = spent

		summary.Budgets = append(summary.Budgets, b)
		summary.Totals.TotalLimit = summary.Totals.TotalLimit.Add(b.Limit)
		summary.Totals.TotalSpent = summary.Totals.TotalSpent.Add(b.Spent)

		switch {
		case b.Spent.GreaterThan(b.Limit):
			summary.OverBudget = append(summary.OverBudget, b)
		case b.Spent.GreaterThanOrEqual(b.Limit.Mul(nearLimitRatio)):
			summary.NearLimit = append(summary.NearLimit, b)
		}
	}

	summary.Totals.Remaining = summary.Totals.TotalLimit.Sub(summary.Totals.TotalSpent)
	summary.Totals.PercentUsed = valueobject.Percent(summary.Totals.TotalSpent, summary.Totals.TotalLimit)

	return summary
}

// PercentUsed returns round(spent / limit * 100), or 0 when the limit is not positive.
func PercentUsed(b entity.Budget) int {
	return valueobject.Percent(b.Spent, b.Limit)
}

// Statuses converts budgets into their snapshot view.
func Statuses(budgets []entity.Budget) []entity.BudgetStatus {
	statuses := make([]entity.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, entity.BudgetStatus{
			Category:    b.Category,
			Limit:       b.Limit,
			Spent:       b.Spent,
			PercentUsed: PercentUsed(b),
		})
	}
	return statuses
}
