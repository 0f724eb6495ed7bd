package recurring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

func expense(name, category string, amount int64, date string) entity.Transaction {
	return entity.Transaction{
		Name:     name,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Date:     date,
		Type:     entity.TransactionTypeWants,
	}
}

func mustDate(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := time.Parse(valueobject.DateLayout, raw)
	if err != nil {
		t.Fatalf("bad test date %q: %v", raw, err)
	}
	return d
}

func TestDetect(t *testing.T) {
	cfg := valueobject.DefaultRecurringConfig()
	now := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	// Test empty input.
	t.Run("empty input yields zero result", func(t *testing.T) {
		result := Detect(nil, now, cfg)

		if len(result.Patterns) != 0 {
			t.Errorf("expected no patterns, got %d", len(result.Patterns))
		}
		if !result.MonthlyRecurringTotal.IsZero() {
			t.Errorf("expected zero monthly total, got %s", result.MonthlyRecurringTotal)
		}
		if result.UpcomingThisWeek == nil || result.Subscriptions == nil || result.Bills == nil {
			t.Error("expected empty slices, not nil")
		}
	})

	// Test the monthly Netflix example.
	t.Run("monthly subscription", func(t *testing.T) {
		txs := []entity.Transaction{
			expense("Netflix", "Entertainment", -649, "2024-10-24"),
			expense("Netflix", "Entertainment", -649, "2024-11-24"),
			expense("Netflix", "Entertainment", -659, "2024-12-24"),
		}

		result := Detect(txs, now, cfg)

		if len(result.Patterns) != 1 {
			t.Fatalf("expected 1 pattern, got %d", len(result.Patterns))
		}
		p := result.Patterns[0]
		if p.Name != "Netflix" {
			t.Errorf("expected name Netflix, got %q", p.Name)
		}
		if p.Frequency != entity.FrequencyMonthly {
			t.Errorf("expected monthly, got %s", p.Frequency)
		}
		if p.Occurrences != 3 {
			t.Errorf("expected 3 occurrences, got %d", p.Occurrences)
		}
		if !p.Amount.Equal(decimal.NewFromInt(652)) {
			t.Errorf("expected amount 652, got %s", p.Amount)
		}
		if got := valueobject.FormatDate(p.NextExpectedDate); got != "2025-01-23" {
			t.Errorf("expected next 2025-01-23, got %s", got)
		}
		if p.AvgDaysBetween != 31 {
			t.Errorf("expected 31 avg days, got %d", p.AvgDaysBetween)
		}
		if !result.MonthlyRecurringTotal.Equal(decimal.NewFromInt(652)) {
			t.Errorf("expected monthly total 652, got %s", result.MonthlyRecurringTotal)
		}
		if len(result.UpcomingThisWeek) != 1 {
			t.Errorf("expected Netflix upcoming, got %d", len(result.UpcomingThisWeek))
		}
		if len(result.Subscriptions) != 1 {
			t.Errorf("expected Netflix as subscription, got %d", len(result.Subscriptions))
		}
		if len(result.Bills) != 0 {
			t.Errorf("expected no bills, got %d", len(result.Bills))
		}
	})

	// Test that a single transaction never forms a pattern.
	t.Run("single transaction is ignored", func(t *testing.T) {
		txs := []entity.Transaction{
			expense("Laptop", "Shopping", -90000, "2024-12-01"),
			expense("Rent", "Bills & Utilities", -15000, "2024-12-01"),
		}

		result := Detect(txs, now, cfg)

		if len(result.Patterns) != 0 {
			t.Errorf("expected no patterns, got %d", len(result.Patterns))
		}
	})

	// Test that income never recurs.
	t.Run("income is skipped", func(t *testing.T) {
		txs := []entity.Transaction{
			{Name: "Salary", Amount: decimal.NewFromInt(50000), Date: "2024-11-01", Type: entity.TransactionTypeIncome},
			{Name: "Salary", Amount: decimal.NewFromInt(50000), Date: "2024-12-01", Type: entity.TransactionTypeIncome},
		}

		result := Detect(txs, now, cfg)

		if len(result.Patterns) != 0 {
			t.Errorf("expected no patterns, got %d", len(result.Patterns))
		}
	})

	// Test gap band rejection.
	t.Run("gaps outside the band are rejected", func(t *testing.T) {
		txs := []entity.Transaction{
			expense("Coffee", "Food & Dining", -200, "2024-12-01"),
			expense("Coffee", "Food & Dining", -200, "2024-12-02"),
			expense("Coffee", "Food & Dining", -200, "2024-12-03"),
		}

		result := Detect(txs, now, cfg)

		if len(result.Patterns) != 0 {
			t.Errorf("expected daily purchases to be rejected, got %d", len(result.Patterns))
		}
	})

	// Test amount tolerance buckets.
	t.Run("different amount buckets do not group", func(t *testing.T) {
		txs := []entity.Transaction{
			expense("Amazon", "Shopping", -500, "2024-10-01"),
			expense("Amazon", "Shopping", -1500, "2024-11-01"),
		}

		result := Detect(txs, now, cfg)

		if len(result.Patterns) != 0 {
			t.Errorf("expected no patterns, got %d", len(result.Patterns))
		}
	})

	// Test case-insensitive name grouping and latest name wins.
	t.Run("names group case-insensitively", func(t *testing.T) {
		txs := []entity.Transaction{
			expense(" spotify ", "Entertainment", -119, "2024-11-05"),
			expense("SPOTIFY", "Subscriptions", -119, "2024-12-05"),
		}

		result := Detect(txs, now, cfg)

		if len(result.Patterns) != 1 {
			t.Fatalf("expected 1 pattern, got %d", len(result.Patterns))
		}
		if result.Patterns[0].Name != "SPOTIFY" || result.Patterns[0].Category != "Subscriptions" {
			t.Errorf("expected latest name and category, got %q/%q", result.Patterns[0].Name, result.Patterns[0].Category)
		}
	})

	// Test ordering, frequency bands and bill matching.
	t.Run("patterns sorted by amount", func(t *testing.T) {
		txs := []entity.Transaction{
			expense("Gym", "Health", -1500, "2024-06-10"),
			expense("Gym", "Health", -1500, "2024-09-10"),
			expense("Gym", "Health", -1500, "2024-12-10"),
			expense("Electricity Bill", "Bills & Utilities", -2400, "2024-11-15"),
			expense("Electricity Bill", "Bills & Utilities", -2400, "2024-12-15"),
			expense("Car wash", "Transport", -300, "2024-12-01"),
			expense("Car wash", "Transport", -300, "2024-12-08"),
			expense("Car wash", "Transport", -300, "2024-12-15"),
		}

		result := Detect(txs, now, cfg)

		if len(result.Patterns) != 3 {
			t.Fatalf("expected 3 patterns, got %d", len(result.Patterns))
		}
		wantOrder := []string{"Electricity Bill", "Gym", "Car wash"}
		wantFreq := []entity.Frequency{entity.FrequencyMonthly, entity.FrequencyQuarterly, entity.FrequencyWeekly}
		for i, p := range result.Patterns {
			if p.Name != wantOrder[i] {
				t.Errorf("pattern %d: expected %s, got %s", i, wantOrder[i], p.Name)
			}
			if p.Frequency != wantFreq[i] {
				t.Errorf("pattern %d: expected %s, got %s", i, wantFreq[i], p.Frequency)
			}
		}

		// 2400 + 1500/3 + 300*4
		if !result.MonthlyRecurringTotal.Equal(decimal.NewFromInt(4100)) {
			t.Errorf("expected monthly total 4100, got %s", result.MonthlyRecurringTotal)
		}
		if len(result.Bills) != 1 || result.Bills[0].Name != "Electricity Bill" {
			t.Errorf("expected electricity as the only bill, got %+v", result.Bills)
		}
		if len(result.Subscriptions) != 1 || result.Subscriptions[0].Name != "Gym" {
			t.Errorf("expected gym as the only subscription, got %+v", result.Subscriptions)
		}
	})

	// Test that the input slice is not reordered.
	t.Run("input is not mutated", func(t *testing.T) {
		txs := []entity.Transaction{
			expense("Netflix", "Entertainment", -649, "2024-12-24"),
			expense("Netflix", "Entertainment", -649, "2024-10-24"),
			expense("Netflix", "Entertainment", -649, "2024-11-24"),
		}

		Detect(txs, now, cfg)

		if txs[0].Date != "2024-12-24" || txs[1].Date != "2024-10-24" {
			t.Error("expected input order to be preserved")
		}
	})

	// Test idempotence.
	t.Run("repeated calls agree", func(t *testing.T) {
		txs := []entity.Transaction{
			expense("Netflix", "Entertainment", -649, "2024-10-24"),
			expense("Netflix", "Entertainment", -649, "2024-11-24"),
		}

		first := Detect(txs, now, cfg)
		second := Detect(txs, now, cfg)

		if len(first.Patterns) != len(second.Patterns) ||
			!first.Patterns[0].NextExpectedDate.Equal(second.Patterns[0].NextExpectedDate) ||
			!first.MonthlyRecurringTotal.Equal(second.MonthlyRecurringTotal) {
			t.Error("expected identical results")
		}
	})

	// Test min occurrences override.
	t.Run("min occurrences is honoured", func(t *testing.T) {
		strict := cfg
		strict.MinOccurrences = 3
		txs := []entity.Transaction{
			expense("Netflix", "Entertainment", -649, "2024-10-24"),
			expense("Netflix", "Entertainment", -649, "2024-11-24"),
		}

		result := Detect(txs, now, strict)

		if len(result.Patterns) != 0 {
			t.Errorf("expected no patterns, got %d", len(result.Patterns))
		}
	})
}

func TestClassifyFrequency(t *testing.T) {
	cfg := valueobject.DefaultRecurringConfig()

	tests := []struct {
		days float64
		want entity.Frequency
	}{
		{5, entity.FrequencyWeekly},
		{10, entity.FrequencyWeekly},
		{10.5, entity.FrequencyMonthly},
		{40, entity.FrequencyMonthly},
		{41, entity.FrequencyQuarterly},
		{100, entity.FrequencyQuarterly},
		{365, entity.FrequencyYearly},
	}

	for _, tt := range tests {
		if got := classifyFrequency(tt.days, cfg); got != tt.want {
			t.Errorf("classifyFrequency(%v) = %s, want %s", tt.days, got, tt.want)
		}
	}
}

func TestUpcomingWindow(t *testing.T) {
	cfg := valueobject.DefaultRecurringConfig()
	txs := []entity.Transaction{
		expense("Netflix", "Entertainment", -649, "2024-10-24"),
		expense("Netflix", "Entertainment", -649, "2024-11-24"),
	}

	// Next expected is 2024-12-25.
	tests := []struct {
		now  string
		want int
	}{
		{"2024-12-18", 1},
		{"2024-12-25", 1},
		{"2024-12-17", 0},
		{"2024-12-26", 0},
	}

	for _, tt := range tests {
		result := Detect(txs, mustDate(t, tt.now), cfg)
		if len(result.UpcomingThisWeek) != tt.want {
			t.Errorf("now=%s: expected %d upcoming, got %d", tt.now, tt.want, len(result.UpcomingThisWeek))
		}
	}
}
