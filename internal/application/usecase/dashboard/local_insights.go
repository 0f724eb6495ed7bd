package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

var (
	overspendRatio = decimal.NewFromFloat(0.9)
	tightRatio     = decimal.NewFromFloat(0.7)
)

// LocalInsights returns rule-based advice for a snapshot. It needs no
// network access and is always available.
func LocalInsights(snapshot entity.FinancialSnapshot) []string {
	totals := snapshot.Totals
	insights := []string{}

	switch rate := totals.SavingsRate; {
	case rate >= 30:
		insights = append(insights, fmt.Sprintf("Excellent! Your %d%% savings rate is above the recommended 20%%. Keep it up!", rate))
	case rate >= 20:
		insights = append(insights, fmt.Sprintf("Good job! Your %d%% savings rate meets the recommended target.", rate))
	case rate > 0:
		insights = append(insights, fmt.Sprintf("Your savings rate is %d%%. Try to reach 20%% by cutting discretionary spending.", rate))
	default:
		insights = append(insights, "You're spending more than you earn. Review your expenses to find areas to cut.")
	}

	if snapshot.HighestCategory != nil {
		share := valueobject.Percent(snapshot.HighestCategory.Amount, totals.Expenses)
		insights = append(insights, fmt.Sprintf(
			"%s is your biggest expense (%d%% of total). Is this aligned with your priorities?",
			snapshot.HighestCategory.Category, share,
		))
	}

	if snapshot.TopDay != nil && (snapshot.TopDay.Day == "Sat" || snapshot.TopDay.Day == "Sun") {
		insights = append(insights, "You spend most on weekends. Consider planning weekend activities that cost less.")
	}

	if totals.Income.IsPositive() {
		ratio := totals.Expenses.Div(totals.Income)
		used := valueobject.Percent(totals.Expenses, totals.Income)
		switch {
		case ratio.GreaterThan(overspendRatio):
			insights = append(insights, fmt.Sprintf("You're using %d%% of income on expenses. Build an emergency buffer.", used))
		case ratio.GreaterThan(tightRatio):
			insights = append(insights, fmt.Sprintf("%d%% of income goes to expenses. Good, but there's room to save more.", used))
		}
	}

	return insights
}
