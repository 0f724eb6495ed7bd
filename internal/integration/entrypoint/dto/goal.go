package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/application/usecase/goal"
	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type,omitempty"`
	Current       float64 `json:"current"`
	Target        float64 `json:"target"`
	MonthlyTarget float64 `json:"monthly_target"`
	Deadline      string  `json:"deadline,omitempty"`
}

// ToInput converts the request to a use case input.
func (r CreateGoalRequest) ToInput(userID uuid.UUID) goal.CreateGoalInput {
	return goal.CreateGoalInput{
		UserID:        userID,
		Name:          r.Name,
		Type:          entity.GoalType(r.Type),
		Current:       decimal.NewFromFloat(r.Current),
		Target:        decimal.NewFromFloat(r.Target),
		MonthlyTarget: decimal.NewFromFloat(r.MonthlyTarget),
		Deadline:      r.Deadline,
	}
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty"`
	Type          *string  `json:"type,omitempty"`
	Current       *float64 `json:"current,omitempty"`
	Target        *float64 `json:"target,omitempty"`
	MonthlyTarget *float64 `json:"monthly_target,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
}

// ToInput converts the request to a use case input.
func (r UpdateGoalRequest) ToInput(goalID int64, userID uuid.UUID) goal.UpdateGoalInput {
	input := goal.UpdateGoalInput{
		GoalID:        goalID,
		UserID:        userID,
		Name:          r.Name,
		Current:       decimalPtr(r.Current),
		Target:        decimalPtr(r.Target),
		MonthlyTarget: decimalPtr(r.MonthlyTarget),
		Deadline:      r.Deadline,
	}
	if r.Type != nil {
		goalType := entity.GoalType(*r.Type)
		input.Type = &goalType
	}
	return input
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Current       float64 `json:"current"`
	Target        float64 `json:"target"`
	MonthlyTarget float64 `json:"monthly_target"`
	Deadline      string  `json:"deadline,omitempty"`
	Color         string  `json:"color"`
	Progress      int     `json:"progress"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals           []GoalResponse `json:"goals"`
	TotalSaved      float64        `json:"total_saved"`
	TotalTarget     float64        `json:"total_target"`
	OverallProgress int            `json:"overall_progress"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g entity.Goal, progress int) GoalResponse {
	return GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		Type:          string(g.Type),
		Current:       money(g.Current),
		Target:        money(g.Target),
		MonthlyTarget: money(g.MonthlyTarget),
		Deadline:      g.Deadline,
		Color:         g.Color,
		Progress:      progress,
	}
}

// ToGoalListResponse converts the list output to a GoalListResponse DTO.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, 0, len(output.Goals))
	for _, g := range output.Goals {
		goals = append(goals, ToGoalResponse(g.Goal, g.Progress))
	}
	return GoalListResponse{
		Goals:           goals,
		TotalSaved:      money(output.TotalSaved),
		TotalTarget:     money(output.TotalTarget),
		OverallProgress: output.OverallProgress,
	}
}

func decimalPtr(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}
