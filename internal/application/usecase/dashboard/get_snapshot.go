package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/application/usecase/budget"
	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// GetSnapshotInput represents the input for building a financial snapshot.
type GetSnapshotInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GetSnapshotOutput represents a financial snapshot with local advice.
type GetSnapshotOutput struct {
	Snapshot         entity.FinancialSnapshot
	LocalInsights    []string
	TransactionCount int
}

// GetSnapshotUseCase builds the snapshot consumed by the AI collaborator.
type GetSnapshotUseCase struct {
	loader      dataLoader
	recentLimit int
}

// NewGetSnapshotUseCase creates a new GetSnapshotUseCase instance.
func NewGetSnapshotUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	budgetRepo adapter.BudgetRepository,
	recentLimit int,
) *GetSnapshotUseCase {
	return &GetSnapshotUseCase{
		loader: dataLoader{
			transactionRepo: transactionRepo,
			goalRepo:        goalRepo,
			budgetRepo:      budgetRepo,
		},
		recentLimit: recentLimit,
	}
}

// Execute builds the snapshot.
func (uc *GetSnapshotUseCase) Execute(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error) {
	data, err := uc.loader.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	budgets := budget.Aggregate(data.transactions, data.budgets, input.Now)
	snapshot := BuildSnapshot(SnapshotInput{
		Transactions: data.transactions,
		Goals:        data.goals,
		Budgets:      budgets.Budgets,
		Now:          input.Now,
		RecentLimit:  uc.recentLimit,
	})

	return &GetSnapshotOutput{
		Snapshot:         snapshot,
		LocalInsights:    LocalInsights(snapshot),
		TransactionCount: len(data.transactions),
	}, nil
}
