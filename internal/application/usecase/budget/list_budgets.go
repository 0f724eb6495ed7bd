package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []entity.Budget
	Seeded  bool
}

// ListBudgetsUseCase lists a user's budgets, seeding the default set for a
// user that has none.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) > 0 {
		return &ListBudgetsOutput{Budgets: budgets}, nil
	}

	defaults := entity.DefaultBudgets(input.UserID)
	if err := uc.budgetRepo.CreateMany(ctx, defaults); err != nil {
		if !errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, fmt.Errorf("failed to seed default budgets: %w", err)
		}
		// Another request seeded first; its budgets are the user's budgets.
		budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list budgets: %w", err)
		}
		return &ListBudgetsOutput{Budgets: budgets}, nil
	}
	slog.Info("Seeded default budgets", "userID", input.UserID, "count", len(defaults))

	seeded := make([]entity.Budget, 0, len(defaults))
	for _, b := range defaults {
		seeded = append(seeded, *b)
	}
	return &ListBudgetsOutput{Budgets: seeded, Seeded: true}, nil
}
