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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Limit    decimal.Decimal
	Period   entity.BudgetPeriod // Optional, defaults to monthly
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryRequired,
			"category is required",
			domainerror.ErrBudgetCategoryRequired,
		)
	}

	if err := validateLimit(input.Limit); err != nil {
		return nil, err
	}

	period := input.Period
	if period == "" {
		period = entity.BudgetPeriodMonthly
	}
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	exists, err := uc.budgetRepo.ExistsByUserAndCategory(ctx, input.UserID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, budgetAlreadyExists()
	}

	budget := entity.NewBudget(input.UserID, category, input.Limit, period)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		// A concurrent request can win between the check and the insert.
		if errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, budgetAlreadyExists()
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}

func budgetAlreadyExists() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetAlreadyExists,
		"a budget already exists for this category",
		domainerror.ErrBudgetAlreadyExists,
	)
}

func validateLimit(limit decimal.Decimal) error {
	if !limit.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit must be greater than zero",
			domainerror.ErrInvalidBudgetLimit,
		)
	}
	return nil
}

func validatePeriod(period entity.BudgetPeriod) error {
	if !period.IsValid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'monthly' or 'weekly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}
