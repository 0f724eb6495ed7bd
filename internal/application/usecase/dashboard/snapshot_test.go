package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/domain/entity"
)

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		target  int64
		want    int
	}{
		{"partial", 25000, 100000, 25},
		{"rounds", 2, 3, 67},
		{"complete", 120, 100, 120},
		{"zero target", 500, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := entity.Goal{Current: decimal.NewFromInt(tt.current), Target: decimal.NewFromInt(tt.target)}
			if got := GoalProgress(goal); got != tt.want {
				t.Errorf("GoalProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildSnapshot(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	var txs []entity.Transaction
	for i := 0; i < 25; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		txs = append(txs, txn("Coffee", "Food & Dining", "-100", date, entity.TransactionTypeWants))
	}

	snapshot := BuildSnapshot(SnapshotInput{
		Transactions: txs,
		Goals: []entity.Goal{
			{Name: "Emergency Fund", Current: decimal.NewFromInt(5000), Target: decimal.NewFromInt(20000)},
		},
		Budgets: []entity.Budget{
			{Category: "Food & Dining", Limit: decimal.NewFromInt(2000), Spent: decimal.NewFromInt(1500)},
		},
		Now: now,
	})

	if len(snapshot.Recent) != DefaultRecentLimit {
		t.Errorf("expected %d recent transactions, got %d", DefaultRecentLimit, len(snapshot.Recent))
	}
	if snapshot.Recent[0].Date != "2025-01-15" {
		t.Errorf("expected newest first, got %s", snapshot.Recent[0].Date)
	}
	if snapshot.HighestCategory == nil || !snapshot.HighestCategory.Amount.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("unexpected highest category: %+v", snapshot.HighestCategory)
	}
	if snapshot.TopDay == nil {
		t.Error("expected a top day")
	}
	if len(snapshot.Goals) != 1 || snapshot.Goals[0].Progress != 25 {
		t.Errorf("unexpected goals: %+v", snapshot.Goals)
	}
	if len(snapshot.Budgets) != 1 || snapshot.Budgets[0].PercentUsed != 75 {
		t.Errorf("unexpected budgets: %+v", snapshot.Budgets)
	}

	// Test empty collections.
	empty := BuildSnapshot(SnapshotInput{Now: now})
	if empty.HighestCategory != nil || empty.TopDay != nil || len(empty.Recent) != 0 {
		t.Errorf("expected empty snapshot, got %+v", empty)
	}
	if empty.Goals == nil || empty.Budgets == nil {
		t.Error("expected empty slices, not nil")
	}
}

func TestLocalInsights(t *testing.T) {
	tests := []struct {
		name     string
		snapshot entity.FinancialSnapshot
		want     []string
	}{
		{
			name: "overspending",
			snapshot: entity.FinancialSnapshot{
				Totals: entity.Totals{Income: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(1500)},
			},
			want: []string{"spending more than you earn", "150% of income on expenses"},
		},
		{
			name: "excellent saver with weekend habit",
			snapshot: entity.FinancialSnapshot{
				Totals:          entity.Totals{Income: decimal.NewFromInt(10000), Expenses: decimal.NewFromInt(6000), SavingsRate: 40},
				HighestCategory: &entity.CategoryAmount{Category: "Shopping", Amount: decimal.NewFromInt(3000)},
				TopDay:          &entity.DaySpending{Day: "Sun", Amount: decimal.NewFromInt(900)},
			},
			want: []string{"40% savings rate is above", "Shopping is your biggest expense (50% of total)", "weekends"},
		},
		{
			name: "tight budget",
			snapshot: entity.FinancialSnapshot{
				Totals: entity.Totals{Income: decimal.NewFromInt(10000), Expenses: decimal.NewFromInt(8000), SavingsRate: 20},
			},
			want: []string{"meets the recommended target", "80% of income goes to expenses"},
		},
		{
			name: "low saver",
			snapshot: entity.FinancialSnapshot{
				Totals: entity.Totals{Income: decimal.NewFromInt(10000), Expenses: decimal.NewFromInt(9500), SavingsRate: 5},
			},
			want: []string{"savings rate is 5%", "95% of income on expenses"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := LocalInsights(tt.snapshot)
			if len(insights) != len(tt.want) {
				t.Fatalf("expected %d insights, got %d: %v", len(tt.want), len(insights), insights)
			}
			for i, fragment := range tt.want {
				if !strings.Contains(insights[i], fragment) {
					t.Errorf("insight %d: expected %q in %q", i, fragment, insights[i])
				}
			}
		})
	}
}
