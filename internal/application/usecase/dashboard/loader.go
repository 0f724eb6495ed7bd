package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// userData is everything the summary engine reads for one user.
type userData struct {
	transactions []entity.Transaction
	goals        []entity.Goal
	budgets      []entity.Budget
}

// dataLoader fetches a user's collections from the repositories.
type dataLoader struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	budgetRepo      adapter.BudgetRepository
}

func (l dataLoader) load(ctx context.Context, userID uuid.UUID) (*userData, error) {
	transactions, err := l.transactionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	goals, err := l.goalRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	budgets, err := l.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	return &userData{
		transactions: transactions,
		goals:        goals,
		budgets:      budgets,
	}, nil
}
