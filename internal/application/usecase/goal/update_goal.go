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

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID        int64
	UserID        uuid.UUID
	Name          *string          // Optional
	Type          *entity.GoalType // Optional
	Current       *decimal.Decimal // Optional
	Target        *decimal.Decimal // Optional
	MonthlyTarget *decimal.Decimal // Optional
	Deadline      *string          // Optional
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNameRequired,
				"name is required",
				domainerror.ErrGoalNameRequired,
			)
		}
		goal.Name = name
	}

	// Changing the type also changes the display color
	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
		goal.Type = *input.Type
		goal.Color = entity.ColorForGoalType(goal.Type)
	}

	if input.Target != nil {
		if err := validateTarget(*input.Target); err != nil {
			return nil, err
		}
		goal.Target = *input.Target
	}

	if input.Current != nil {
		if err := validateAmounts(*input.Current); err != nil {
			return nil, err
		}
		goal.Current = *input.Current
	}

	if input.MonthlyTarget != nil {
		if err := validateAmounts(*input.MonthlyTarget); err != nil {
			return nil, err
		}
		goal.MonthlyTarget = *input.MonthlyTarget
	}

	if input.Deadline != nil {
		goal.Deadline = strings.TrimSpace(*input.Deadline)
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
