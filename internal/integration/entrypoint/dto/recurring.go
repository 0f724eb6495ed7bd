package dto

import (
	"github.com/paisa-buddy/backend/internal/application/usecase/recurring"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// RecurringPatternResponse represents a detected recurring payment.
type RecurringPatternResponse struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Amount           float64 `json:"amount"`
	Frequency        string  `json:"frequency"`
	Occurrences      int     `json:"occurrences"`
	LastDate         string  `json:"last_date"`
	NextExpectedDate string  `json:"next_expected_date"`
	AvgDaysBetween   int     `json:"avg_days_between"`
}

// RecurringResponse represents the response for recurring payment detection.
type RecurringResponse struct {
	Patterns              []RecurringPatternResponse `json:"patterns"`
	MonthlyRecurringTotal float64                    `json:"monthly_recurring_total"`
	UpcomingThisWeek      []RecurringPatternResponse `json:"upcoming_this_week"`
	Subscriptions         []RecurringPatternResponse `json:"subscriptions"`
	Bills                 []RecurringPatternResponse `json:"bills"`
}

// ToRecurringResponse converts a detection result to a RecurringResponse DTO.
func ToRecurringResponse(result recurring.Result) RecurringResponse {
	return RecurringResponse{
		Patterns:              toPatternResponses(result.Patterns),
		MonthlyRecurringTotal: money(result.MonthlyRecurringTotal),
		UpcomingThisWeek:      toPatternResponses(result.UpcomingThisWeek),
		Subscriptions:         toPatternResponses(result.Subscriptions),
		Bills:                 toPatternResponses(result.Bills),
	}
}

func toPatternResponses(patterns []entity.RecurringPattern) []RecurringPatternResponse {
	items := make([]RecurringPatternResponse, 0, len(patterns))
	for _, p := range patterns {
		items = append(items, RecurringPatternResponse{
			Name:             p.Name,
			Category:         p.Category,
			Amount:           money(p.Amount),
			Frequency:        string(p.Frequency),
			Occurrences:      p.Occurrences,
			LastDate:         valueobject.FormatDate(p.LastDate),
			NextExpectedDate: valueobject.FormatDate(p.NextExpectedDate),
			AvgDaysBetween:   p.AvgDaysBetween,
		})
	}
	return items
}
