package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/application/usecase/budget"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Period   string  `json:"period,omitempty" binding:"omitempty,oneof=monthly weekly"`
}

// ToInput converts the request to a use case input.
func (r CreateBudgetRequest) ToInput(userID uuid.UUID) budget.CreateBudgetInput {
	return budget.CreateBudgetInput{
		UserID:   userID,
		Category: r.Category,
		Limit:    decimal.NewFromFloat(r.Limit),
		Period:   entity.BudgetPeriod(r.Period),
	}
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category *string  `json:"category,omitempty"`
	Limit    *float64 `json:"limit,omitempty"`
	Period   *string  `json:"period,omitempty" binding:"omitempty,oneof=monthly weekly"`
}

// ToInput converts the request to a use case input.
func (r UpdateBudgetRequest) ToInput(budgetID int64, userID uuid.UUID) budget.UpdateBudgetInput {
	input := budget.UpdateBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
		Category: r.Category,
		Limit:    decimalPtr(r.Limit),
	}
	if r.Period != nil {
		period := entity.BudgetPeriod(*r.Period)
		input.Period = &period
	}
	return input
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Limit       float64 `json:"limit"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed int     `json:"percent_used"`
	Period      string  `json:"period"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Seeded  bool             `json:"seeded"`
}

// BudgetTotalsResponse represents the combined figures of all budgets.
type BudgetTotalsResponse struct {
	TotalLimit  float64 `json:"total_limit"`
	TotalSpent  float64 `json:"total_spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed int     `json:"percent_used"`
}

// BudgetSummaryResponse represents the aggregated budget view.
type BudgetSummaryResponse struct {
	Budgets    []BudgetResponse     `json:"budgets"`
	Totals     BudgetTotalsResponse `json:"totals"`
	OverBudget []string             `json:"over_budget"`
	NearLimit  []string             `json:"near_limit"`
}

// BudgetAlertResponse represents a single threshold crossing.
type BudgetAlertResponse struct {
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Limit       float64 `json:"limit"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed int     `json:"percent_used"`
}

// BudgetStatusResponse represents the response for the budget status view.
type BudgetStatusResponse struct {
	BudgetSummaryResponse
	Alerts   []BudgetAlertResponse `json:"alerts"`
	Exceeded []BudgetAlertResponse `json:"exceeded"`
	Warnings []BudgetAlertResponse `json:"warnings"`
}

// EvaluateAlertsResponse represents the result of an alert evaluation cycle.
type EvaluateAlertsResponse struct {
	Alerts          []BudgetAlertResponse `json:"alerts"`
	FirstEvaluation bool                  `json:"first_evaluation"`
	Period          string                `json:"period"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b entity.Budget) BudgetResponse {
	spent := b.Spent
	return BudgetResponse{
		ID:          b.ID,
		Category:    b.Category,
		Limit:       money(b.Limit),
		Spent:       money(spent),
		Remaining:   money(b.Limit.Sub(spent)),
		PercentUsed: valueobject.Percent(spent, b.Limit),
		Period:      string(b.Period),
	}
}

// ToBudgetListResponse converts the list output to a BudgetListResponse DTO.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	return BudgetListResponse{
		Budgets: toBudgetResponses(output.Budgets),
		Seeded:  output.Seeded,
	}
}

// ToBudgetSummaryResponse converts an aggregator summary to its DTO.
func ToBudgetSummaryResponse(summary budget.Summary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		Budgets: toBudgetResponses(summary.Budgets),
		Totals: BudgetTotalsResponse{
			TotalLimit:  money(summary.Totals.TotalLimit),
			TotalSpent:  money(summary.Totals.TotalSpent),
			Remaining:   money(summary.Totals.Remaining),
			PercentUsed: summary.Totals.PercentUsed,
		},
		OverBudget: budgetCategories(summary.OverBudget),
		NearLimit:  budgetCategories(summary.NearLimit),
	}
}

// ToBudgetStatusResponse converts the status output to a BudgetStatusResponse DTO.
func ToBudgetStatusResponse(output *budget.GetBudgetStatusOutput) BudgetStatusResponse {
	return BudgetStatusResponse{
		BudgetSummaryResponse: ToBudgetSummaryResponse(output.Summary),
		Alerts:                ToBudgetAlertResponses(output.Alerts),
		Exceeded:              ToBudgetAlertResponses(output.Exceeded),
		Warnings:              ToBudgetAlertResponses(output.Warnings),
	}
}

// ToEvaluateAlertsResponse converts an evaluation output to its DTO.
func ToEvaluateAlertsResponse(output *budget.EvaluateBudgetAlertsOutput) EvaluateAlertsResponse {
	return EvaluateAlertsResponse{
		Alerts:          ToBudgetAlertResponses(output.Alerts),
		FirstEvaluation: output.FirstEvaluation,
		Period:          output.Period,
	}
}

// ToBudgetAlertResponses converts budget alerts to DTOs.
func ToBudgetAlertResponses(alerts []entity.BudgetAlert) []BudgetAlertResponse {
	items := make([]BudgetAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, BudgetAlertResponse{
			Category:    a.Category,
			Type:        string(a.Type),
			Limit:       money(a.Limit),
			Spent:       money(a.Spent),
			Remaining:   money(a.Remaining()),
			PercentUsed: a.PercentUsed,
		})
	}
	return items
}

func toBudgetResponses(budgets []entity.Budget) []BudgetResponse {
	items := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		items = append(items, ToBudgetResponse(b))
	}
	return items
}

func budgetCategories(budgets []entity.Budget) []string {
	categories := make([]string, 0, len(budgets))
	for _, b := range budgets {
		categories = append(categories, b.Category)
	}
	return categories
}
