package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/application/usecase/budget"
	"github.com/paisa-buddy/backend/internal/application/usecase/recurring"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

const (
	// DashboardRecentLimit is the number of transactions in the recent list.
	DashboardRecentLimit = 5

	// DashboardDailyLimit is the number of active days in the daily chart.
	DashboardDailyLimit = 8
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GetSummaryOutput represents every derived view of the dashboard.
type GetSummaryOutput struct {
	Totals          entity.Totals
	Categories      []entity.CategoryAmount
	HighestCategory *entity.CategoryAmount
	Types           []TypeAmount
	Weekly          []entity.DaySpending
	TopDay          *entity.DaySpending
	MonthlyNet      []MonthlyNetPoint
	Daily           []DayFlow
	Recent          []entity.Transaction
	Budgets         budget.Summary
	Goals           []entity.GoalProgress
	Recurring       recurring.Result
	Insights        []string
}

// GetSummaryUseCase runs the summary engine over a user's data.
type GetSummaryUseCase struct {
	loader          dataLoader
	recurringConfig valueobject.RecurringConfig
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	budgetRepo adapter.BudgetRepository,
	recurringConfig valueobject.RecurringConfig,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		loader: dataLoader{
			transactionRepo: transactionRepo,
			goalRepo:        goalRepo,
			budgetRepo:      budgetRepo,
		},
		recurringConfig: recurringConfig,
	}
}

// Execute builds the dashboard summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	data, err := uc.loader.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	txs := data.transactions
	categories := CategoryBreakdown(txs)
	weekly := WeeklySpending(txs, input.Now)
	budgets := budget.Aggregate(txs, data.budgets, input.Now)

	output := &GetSummaryOutput{
		Totals:          CalculateTotals(txs),
		Categories:      categories,
		HighestCategory: HighestCategory(categories),
		Types:           TypeBreakdown(txs),
		Weekly:          weekly,
		TopDay:          TopDay(weekly),
		MonthlyNet:      MonthlyNet(txs, input.Now),
		Daily:           DailySpending(txs, input.Now, DashboardDailyLimit),
		Recent:          RecentTransactions(txs, input.Now, DashboardRecentLimit),
		Budgets:         budgets,
		Goals:           GoalsProgress(data.goals),
		Recurring:       recurring.Detect(txs, input.Now, uc.recurringConfig),
	}
	output.Insights = LocalInsights(entity.FinancialSnapshot{
		Totals:          output.Totals,
		HighestCategory: output.HighestCategory,
		TopDay:          output.TopDay,
	})

	return output, nil
}
