package dashboard

import (
	"time"

	"github.com/paisa-buddy/backend/internal/application/usecase/budget"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// DefaultRecentLimit is the number of transactions carried in a snapshot.
const DefaultRecentLimit = 20

// SnapshotInput holds the collections a snapshot is built from. Budgets are
// expected to carry Spent already.
type SnapshotInput struct {
	Transactions []entity.Transaction
	Goals        []entity.Goal
	Budgets      []entity.Budget
	Now          time.Time
	RecentLimit  int // Defaults to DefaultRecentLimit when zero
}

// GoalProgress returns round(current / target * 100), or 0 when the target is
// not positive.
func GoalProgress(goal entity.Goal) int {
	return valueobject.Percent(goal.Current, goal.Target)
}

// GoalsProgress maps goals to their progress view.
func GoalsProgress(goals []entity.Goal) []entity.GoalProgress {
	progress := make([]entity.GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, entity.GoalProgress{
			Name:     g.Name,
			Current:  g.Current,
			Target:   g.Target,
			Progress: GoalProgress(g),
		})
	}
	return progress
}

// BuildSnapshot derives the read-only summary handed to the AI collaborator.
func BuildSnapshot(input SnapshotInput) entity.FinancialSnapshot {
	limit := input.RecentLimit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	recent := RecentTransactions(input.Transactions, input.Now, limit)
	snapshotRecent := make([]entity.SnapshotTransaction, 0, len(recent))
	for _, tx := range recent {
		snapshotRecent = append(snapshotRecent, entity.SnapshotTransaction{
			Name:     tx.Name,
			Category: tx.CategoryOrOther(),
			Amount:   tx.Amount,
			Date:     tx.Date,
		})
	}

	return entity.FinancialSnapshot{
		Totals:          CalculateTotals(input.Transactions),
		HighestCategory: HighestCategory(CategoryBreakdown(input.Transactions)),
		TopDay:          TopDay(WeeklySpending(input.Transactions, input.Now)),
		Recent:          snapshotRecent,
		Goals:           GoalsProgress(input.Goals),
		Budgets:         budget.Statuses(input.Budgets),
	}
}
