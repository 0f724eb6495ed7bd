// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// GoalWithProgress pairs a goal with its completion percentage.
type GoalWithProgress struct {
	Goal     entity.Goal
	Progress int
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals           []GoalWithProgress
	TotalSaved      decimal.Decimal
	TotalTarget     decimal.Decimal
	OverallProgress int
}

// ListGoalsUseCase handles listing a user's goals.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute retrieves the goals and their combined progress.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &ListGoalsOutput{
		Goals:       make([]GoalWithProgress, 0, len(goals)),
		TotalSaved:  decimal.Zero,
		TotalTarget: decimal.Zero,
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, GoalWithProgress{
			Goal:     g,
			Progress: valueobject.Percent(g.Current, g.Target),
		})
		output.TotalSaved = output.TotalSaved.Add(g.Current)
		output.TotalTarget = output.TotalTarget.Add(g.Target)
	}
	output.OverallProgress = valueobject.Percent(output.TotalSaved, output.TotalTarget)

	return output, nil
}
