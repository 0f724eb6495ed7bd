package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
// Nil fields are left unchanged.
type UpdateBudgetInput struct {
	BudgetID int64
	UserID   uuid.UUID
	Category *string
	Limit    *decimal.Decimal
	Period   *entity.BudgetPeriod
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := findOwnedBudget(ctx, uc.budgetRepo, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryRequired,
				"category is required",
				domainerror.ErrBudgetCategoryRequired,
			)
		}
		if category != budget.Category {
			exists, err := uc.budgetRepo.ExistsByUserAndCategory(ctx, input.UserID, category)
			if err != nil {
				return nil, fmt.Errorf("failed to check budget existence: %w", err)
			}
			if exists {
				return nil, budgetAlreadyExists()
			}
			budget.Category = category
		}
	}

	if input.Limit != nil {
		if err := validateLimit(*input.Limit); err != nil {
			return nil, err
		}
		budget.Limit = *input.Limit
	}

	if input.Period != nil {
		if err := validatePeriod(*input.Period); err != nil {
			return nil, err
		}
		budget.Period = *input.Period
	}

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		if errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, budgetAlreadyExists()
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}

// findOwnedBudget loads a budget and checks it belongs to userID.
func findOwnedBudget(ctx context.Context, repo adapter.BudgetRepository, budgetID int64, userID uuid.UUID) (*entity.Budget, error) {
	budget, err := repo.FindByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if budget.UserID != userID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnauthorizedBudgetAccess,
			"you are not authorized to access this budget",
			domainerror.ErrUnauthorizedBudgetAccess,
		)
	}

	return budget, nil
}
