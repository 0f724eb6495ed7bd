package dto

import (
	"github.com/paisa-buddy/backend/internal/application/usecase/dashboard"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// TotalsResponse represents income and expense totals.
type TotalsResponse struct {
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Balance     float64 `json:"balance"`
	SavingsRate int     `json:"savings_rate"`
}

// CategoryAmountResponse represents the expense total of one category.
type CategoryAmountResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// TypeAmountResponse represents the total of one classification tag.
type TypeAmountResponse struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// DaySpendingResponse represents the spending of one weekday bucket.
type DaySpendingResponse struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
}

// MonthlyNetResponse represents one month of the net cash-flow series.
type MonthlyNetResponse struct {
	Month     string   `json:"month"`
	Label     string   `json:"label"`
	Actual    *float64 `json:"actual"`
	Projected *float64 `json:"projected"`
}

// DayFlowResponse represents the income and expense of one day.
type DayFlowResponse struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// GoalProgressResponse represents a goal with its completion percentage.
type GoalProgressResponse struct {
	Name     string  `json:"name"`
	Current  float64 `json:"current"`
	Target   float64 `json:"target"`
	Progress int     `json:"progress"`
}

// DashboardSummaryResponse represents the full dashboard.
type DashboardSummaryResponse struct {
	Totals          TotalsResponse           `json:"totals"`
	Categories      []CategoryAmountResponse `json:"categories"`
	HighestCategory *CategoryAmountResponse  `json:"highest_category"`
	Types           []TypeAmountResponse     `json:"types"`
	Weekly          []DaySpendingResponse    `json:"weekly"`
	TopDay          *DaySpendingResponse     `json:"top_day"`
	MonthlyNet      []MonthlyNetResponse     `json:"monthly_net"`
	Daily           []DayFlowResponse        `json:"daily"`
	Recent          []TransactionResponse    `json:"recent"`
	Budgets         BudgetSummaryResponse    `json:"budgets"`
	Goals           []GoalProgressResponse   `json:"goals"`
	Recurring       RecurringResponse        `json:"recurring"`
	Insights        []string                 `json:"insights"`
}

// SnapshotTransactionResponse represents a transaction inside a snapshot.
type SnapshotTransactionResponse struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// BudgetStatusItemResponse represents a budget inside a snapshot.
type BudgetStatusItemResponse struct {
	Category    string  `json:"category"`
	Limit       float64 `json:"limit"`
	Spent       float64 `json:"spent"`
	PercentUsed int     `json:"percent_used"`
}

// SnapshotResponse represents the financial snapshot.
type SnapshotResponse struct {
	Totals          TotalsResponse                `json:"totals"`
	HighestCategory *CategoryAmountResponse       `json:"highest_category"`
	TopDay          *DaySpendingResponse          `json:"top_day"`
	Recent          []SnapshotTransactionResponse `json:"recent"`
	Goals           []GoalProgressResponse        `json:"goals"`
	Budgets         []BudgetStatusItemResponse    `json:"budgets"`
}

// DashboardSnapshotResponse represents the snapshot endpoint response.
type DashboardSnapshotResponse struct {
	Snapshot         SnapshotResponse `json:"snapshot"`
	LocalInsights    []string         `json:"local_insights"`
	TransactionCount int              `json:"transaction_count"`
}

// DataRangeResponse represents the response for the data range endpoint.
type DataRangeResponse struct {
	OldestDate        *string `json:"oldest_date"`
	NewestDate        *string `json:"newest_date"`
	TotalTransactions int     `json:"total_transactions"`
	HasData           bool    `json:"has_data"`
}

// ToDashboardSummaryResponse converts the summary output to its DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	categories := make([]CategoryAmountResponse, 0, len(output.Categories))
	for _, c := range output.Categories {
		categories = append(categories, toCategoryAmount(c))
	}

	types := make([]TypeAmountResponse, 0, len(output.Types))
	for _, t := range output.Types {
		types = append(types, TypeAmountResponse{Type: string(t.Type), Amount: money(t.Amount)})
	}

	monthly := make([]MonthlyNetResponse, 0, len(output.MonthlyNet))
	for _, m := range output.MonthlyNet {
		monthly = append(monthly, MonthlyNetResponse{
			Month:     m.Month,
			Label:     m.Label,
			Actual:    moneyPtr(m.Actual),
			Projected: moneyPtr(m.Projected),
		})
	}

	daily := make([]DayFlowResponse, 0, len(output.Daily))
	for _, d := range output.Daily {
		daily = append(daily, DayFlowResponse{
			Date:    valueobject.FormatDate(d.Date),
			Label:   d.Label,
			Income:  money(d.Income),
			Expense: money(d.Expense),
		})
	}

	return DashboardSummaryResponse{
		Totals:          toTotals(output.Totals),
		Categories:      categories,
		HighestCategory: toCategoryAmountPtr(output.HighestCategory),
		Types:           types,
		Weekly:          toDaySpending(output.Weekly),
		TopDay:          toDaySpendingPtr(output.TopDay),
		MonthlyNet:      monthly,
		Daily:           daily,
		Recent:          ToTransactionListResponse(output.Recent).Transactions,
		Budgets:         ToBudgetSummaryResponse(output.Budgets),
		Goals:           toGoalProgress(output.Goals),
		Recurring:       ToRecurringResponse(output.Recurring),
		Insights:        nonNilStrings(output.Insights),
	}
}

// ToDashboardSnapshotResponse converts the snapshot output to its DTO.
func ToDashboardSnapshotResponse(output *dashboard.GetSnapshotOutput) DashboardSnapshotResponse {
	return DashboardSnapshotResponse{
		Snapshot:         ToSnapshotResponse(output.Snapshot),
		LocalInsights:    nonNilStrings(output.LocalInsights),
		TransactionCount: output.TransactionCount,
	}
}

// ToSnapshotResponse converts a financial snapshot to its DTO.
func ToSnapshotResponse(s entity.FinancialSnapshot) SnapshotResponse {
	recent := make([]SnapshotTransactionResponse, 0, len(s.Recent))
	for _, t := range s.Recent {
		recent = append(recent, SnapshotTransactionResponse{
			Name:     t.Name,
			Category: t.Category,
			Amount:   money(t.Amount),
			Date:     t.Date,
		})
	}

	budgets := make([]BudgetStatusItemResponse, 0, len(s.Budgets))
	for _, b := range s.Budgets {
		budgets = append(budgets, BudgetStatusItemResponse{
			Category:    b.Category,
			Limit:       money(b.Limit),
			Spent:       money(b.Spent),
			PercentUsed: b.PercentUsed,
		})
	}

	return SnapshotResponse{
		Totals:          toTotals(s.Totals),
		HighestCategory: toCategoryAmountPtr(s.HighestCategory),
		TopDay:          toDaySpendingPtr(s.TopDay),
		Recent:          recent,
		Goals:           toGoalProgress(s.Goals),
		Budgets:         budgets,
	}
}

// ToDataRangeResponse converts the data range output to its DTO.
func ToDataRangeResponse(output *dashboard.GetDataRangeOutput) DataRangeResponse {
	return DataRangeResponse{
		OldestDate:        datePtr(output.OldestDate),
		NewestDate:        datePtr(output.NewestDate),
		TotalTransactions: output.TotalTransactions,
		HasData:           output.HasData,
	}
}

func toTotals(t entity.Totals) TotalsResponse {
	return TotalsResponse{
		Income:      money(t.Income),
		Expenses:    money(t.Expenses),
		Balance:     money(t.Balance),
		SavingsRate: t.SavingsRate,
	}
}

func toCategoryAmount(c entity.CategoryAmount) CategoryAmountResponse {
	return CategoryAmountResponse{Category: c.Category, Amount: money(c.Amount)}
}

func toCategoryAmountPtr(c *entity.CategoryAmount) *CategoryAmountResponse {
	if c == nil {
		return nil
	}
	r := toCategoryAmount(*c)
	return &r
}

func toDaySpending(days []entity.DaySpending) []DaySpendingResponse {
	items := make([]DaySpendingResponse, 0, len(days))
	for _, d := range days {
		items = append(items, DaySpendingResponse{Day: d.Day, Amount: money(d.Amount)})
	}
	return items
}

func toDaySpendingPtr(d *entity.DaySpending) *DaySpendingResponse {
	if d == nil {
		return nil
	}
	return &DaySpendingResponse{Day: d.Day, Amount: money(d.Amount)}
}

func toGoalProgress(goals []entity.GoalProgress) []GoalProgressResponse {
	items := make([]GoalProgressResponse, 0, len(goals))
	for _, g := range goals {
		items = append(items, GoalProgressResponse{
			Name:     g.Name,
			Current:  money(g.Current),
			Target:   money(g.Target),
			Progress: g.Progress,
		})
	}
	return items
}
