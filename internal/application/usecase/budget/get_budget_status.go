package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// GetBudgetStatusInput represents the input for the budget status view.
type GetBudgetStatusInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GetBudgetStatusOutput represents the budget status view.
type GetBudgetStatusOutput struct {
	Summary  Summary
	Alerts   []entity.BudgetAlert // Every currently crossed threshold
	Exceeded []entity.BudgetAlert
	Warnings []entity.BudgetAlert
}

// GetBudgetStatusUseCase aggregates the user's budgets against their transactions.
type GetBudgetStatusUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	thresholds      valueobject.AlertThresholds
}

// NewGetBudgetStatusUseCase creates a new GetBudgetStatusUseCase instance.
func NewGetBudgetStatusUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	thresholds valueobject.AlertThresholds,
) *GetBudgetStatusUseCase {
	return &GetBudgetStatusUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		thresholds:      thresholds,
	}
}

// Execute builds the budget status view.
func (uc *GetBudgetStatusUseCase) Execute(ctx context.Context, input GetBudgetStatusInput) (*GetBudgetStatusOutput, error) {
	summary, err := loadSummary(ctx, uc.transactionRepo, uc.budgetRepo, input.UserID, input.Now)
	if err != nil {
		return nil, err
	}

	alerts := CurrentAlerts(summary.Budgets, uc.thresholds)
	exceeded, warnings := SplitAlerts(alerts)

	return &GetBudgetStatusOutput{
		Summary:  *summary,
		Alerts:   alerts,
		Exceeded: exceeded,
		Warnings: warnings,
	}, nil
}

// loadSummary fetches budgets and transactions and aggregates them.
func loadSummary(
	ctx context.Context,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	userID uuid.UUID,
	now time.Time,
) (*Summary, error) {
	budgets, err := budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	transactions, err := transactionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := Aggregate(transactions, budgets, now)
	return &summary, nil
}
