// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Name          string
	Type          entity.GoalType // Optional, defaults to Other
	Current       decimal.Decimal
	Target        decimal.Decimal
	MonthlyTarget decimal.Decimal
	Deadline      string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNameRequired,
			"name is required",
			domainerror.ErrGoalNameRequired,
		)
	}

	goalType := input.Type
	if goalType == "" {
		goalType = entity.GoalTypeOther
	}
	if err := validateType(goalType); err != nil {
		return nil, err
	}

	if err := validateTarget(input.Target); err != nil {
		return nil, err
	}
	if err := validateAmounts(input.Current, input.MonthlyTarget); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(
		input.UserID,
		name,
		goalType,
		input.Current,
		input.Target,
		input.MonthlyTarget,
		strings.TrimSpace(input.Deadline),
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

func validateType(goalType entity.GoalType) error {
	if !goalType.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"type must be one of Emergency, Vacation, Education, Home, Vehicle, Other",
			domainerror.ErrInvalidGoalType,
		)
	}
	return nil
}

func validateTarget(target decimal.Decimal) error {
	if !target.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTarget,
			"target must be greater than zero",
			domainerror.ErrInvalidGoalTarget,
		)
	}
	return nil
}

func validateAmounts(amounts ...decimal.Decimal) error {
	for _, amount := range amounts {
		if amount.IsNegative() {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalAmount,
				"amounts cannot be negative",
				domainerror.ErrInvalidGoalAmount,
			)
		}
	}
	return nil
}
