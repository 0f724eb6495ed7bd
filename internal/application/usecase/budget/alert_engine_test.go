package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

func spentBudget(category string, limit, spent int64) entity.Budget {
	return entity.Budget{
		Category: category,
		Limit:    decimal.NewFromInt(limit),
		Spent:    decimal.NewFromInt(spent),
		Period:   entity.BudgetPeriodMonthly,
	}
}

func TestEvaluate(t *testing.T) {
	thresholds := valueobject.DefaultAlertThresholds()
	january := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	february := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	// Test the full first-load, transition, dedupe and rollover cycle.
	t.Run("alert lifecycle", func(t *testing.T) {
		state := NewAlertState()

		alerts := Evaluate(state, []entity.Budget{spentBudget("Food & Dining", 1000, 950)}, january, thresholds)
		if len(alerts) != 0 {
			t.Fatalf("expected no alerts on first evaluation, got %d", len(alerts))
		}

		over := []entity.Budget{spentBudget("Food & Dining", 1000, 1010)}
		alerts = Evaluate(state, over, january, thresholds)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if alerts[0].Type != entity.AlertTypeExceeded || alerts[0].PercentUsed != 101 {
			t.Errorf("expected exceeded at 101%%, got %s at %d", alerts[0].Type, alerts[0].PercentUsed)
		}

		if alerts = Evaluate(state, over, january, thresholds); len(alerts) != 0 {
			t.Errorf("expected no duplicate alerts, got %d", len(alerts))
		}

		alerts = Evaluate(state, over, february, thresholds)
		if len(alerts) != 1 || alerts[0].Type != entity.AlertTypeExceeded {
			t.Errorf("expected exceeded to re-alert after rollover, got %+v", alerts)
		}
		if state.Period() != "2025-02" {
			t.Errorf("expected period 2025-02, got %s", state.Period())
		}
	})

	// Test escalation from warning to critical.
	t.Run("escalation emits each level once", func(t *testing.T) {
		state := NewAlertState()
		Evaluate(state, []entity.Budget{spentBudget("Shopping", 1000, 100)}, january, thresholds)

		steps := []struct {
			spent int64
			want  []entity.AlertType
		}{
			{800, []entity.AlertType{entity.AlertTypeWarning}},
			{850, nil},
			{900, []entity.AlertType{entity.AlertTypeCritical}},
			{1000, []entity.AlertType{entity.AlertTypeExceeded}},
			{1200, nil},
		}

		for _, step := range steps {
			alerts := Evaluate(state, []entity.Budget{spentBudget("Shopping", 1000, step.spent)}, january, thresholds)
			if len(alerts) != len(step.want) {
				t.Fatalf("spent %d: expected %d alerts, got %d", step.spent, len(step.want), len(alerts))
			}
			for i, a := range alerts {
				if a.Type != step.want[i] {
					t.Errorf("spent %d: expected %s, got %s", step.spent, step.want[i], a.Type)
				}
			}
		}
	})

	// Test that an empty budget list does not consume the first evaluation.
	t.Run("no budgets keeps first evaluation armed", func(t *testing.T) {
		state := NewAlertState()

		Evaluate(state, nil, january, thresholds)
		if state.Evaluated() {
			t.Error("expected state to stay unevaluated")
		}

		alerts := Evaluate(state, []entity.Budget{spentBudget("Shopping", 1000, 1200)}, january, thresholds)
		if len(alerts) != 0 {
			t.Errorf("expected suppression on first real evaluation, got %d", len(alerts))
		}
	})

	// Test zero-limit budgets are ignored.
	t.Run("zero limit never alerts", func(t *testing.T) {
		state := NewAlertState()
		Evaluate(state, []entity.Budget{spentBudget("Other", 0, 0)}, january, thresholds)

		alerts := Evaluate(state, []entity.Budget{spentBudget("Other", 0, 500)}, january, thresholds)
		if len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})

	// Test custom thresholds.
	t.Run("custom thresholds", func(t *testing.T) {
		custom := valueobject.AlertThresholds{Warning: 50, Critical: 75, Exceeded: 100}
		state := NewAlertState()
		Evaluate(state, []entity.Budget{spentBudget("Transport", 1000, 0)}, january, custom)

		alerts := Evaluate(state, []entity.Budget{spentBudget("Transport", 1000, 600)}, january, custom)
		if len(alerts) != 1 || alerts[0].Type != entity.AlertTypeWarning {
			t.Errorf("expected warning at 60%%, got %+v", alerts)
		}
	})
}

func TestAlertStateSnapshot(t *testing.T) {
	thresholds := valueobject.DefaultAlertThresholds()
	now := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	state := NewAlertState()
	Evaluate(state, []entity.Budget{
		spentBudget("Bills: Rent", 1000, 950),
		spentBudget("Shopping", 1000, 10),
	}, now, thresholds)

	record := state.Snapshot()
	if record.Period != "2025-03" || !record.Evaluated {
		t.Fatalf("unexpected record: %+v", record)
	}
	want := []string{"Bills: Rent:critical", "Bills: Rent:warning"}
	if len(record.Shown) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), record.Shown)
	}
	for i := range want {
		if record.Shown[i] != want[i] {
			t.Errorf("key %d: expected %q, got %q", i, want[i], record.Shown[i])
		}
	}

	record.Shown = append(record.Shown, "broken", ":warning", "Food:")
	restored := RestoreAlertState(record)

	if restored.Len() != 2 {
		t.Errorf("expected malformed keys to be skipped, got %d keys", restored.Len())
	}
	if !restored.Has("Bills: Rent", entity.AlertTypeCritical) {
		t.Error("expected category containing a colon to survive the round trip")
	}
	if alerts := Evaluate(restored, []entity.Budget{spentBudget("Bills: Rent", 1000, 950)}, now, thresholds); len(alerts) != 0 {
		t.Errorf("expected restored state to suppress shown alerts, got %d", len(alerts))
	}
}

func TestCurrentAlerts(t *testing.T) {
	budgets := []entity.Budget{
		spentBudget("Food & Dining", 8000, 9500),
		spentBudget("Shopping", 5000, 4600),
		spentBudget("Transport", 3000, 2500),
		spentBudget("Entertainment", 2000, 100),
	}

	alerts := CurrentAlerts(budgets, valueobject.DefaultAlertThresholds())
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}

	exceeded, warnings := SplitAlerts(alerts)
	if len(exceeded) != 1 || exceeded[0].Category != "Food & Dining" {
		t.Errorf("unexpected exceeded: %+v", exceeded)
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d", len(warnings))
	}
	if warnings[0].Type != entity.AlertTypeCritical || warnings[1].Type != entity.AlertTypeWarning {
		t.Errorf("unexpected warning types: %s, %s", warnings[0].Type, warnings[1].Type)
	}
}
