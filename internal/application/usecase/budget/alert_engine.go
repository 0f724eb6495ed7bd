package budget

import (
	"sort"
	"strings"
	"time"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

type alertKey struct {
	Category  string
	Threshold entity.AlertType
}

func (k alertKey) String() string {
	return k.Category + ":" + string(k.Threshold)
}

// AlertState is the shown-set of one user session. It is owned by the
// caller and passed into Evaluate; the zero value is not usable, use
// NewAlertState.
type AlertState struct {
	period    string
	evaluated bool
	shown     map[alertKey]struct{}
}

// NewAlertState creates an empty state whose next evaluation is treated as
// the first one.
func NewAlertState() *AlertState {
	return &AlertState{shown: make(map[alertKey]struct{})}
}

// ResetForNewPeriod forgets every shown alert and moves the state to period.
// It does not re-arm first-evaluation suppression, so thresholds that are
// still crossed alert again in the new period.
func (s *AlertState) ResetForNewPeriod(period string) {
	s.period = period
	s.shown = make(map[alertKey]struct{})
}

// Period returns the YYYY-MM the shown-set belongs to.
func (s *AlertState) Period() string {
	return s.period
}

// Evaluated reports whether the first evaluation has happened.
func (s *AlertState) Evaluated() bool {
	return s.evaluated
}

// Has reports whether the threshold was already surfaced for category.
func (s *AlertState) Has(category string, threshold entity.AlertType) bool {
	_, ok := s.shown[alertKey{Category: category, Threshold: threshold}]
	return ok
}

// Len returns the size of the shown-set.
func (s *AlertState) Len() int {
	return len(s.shown)
}

func (s *AlertState) mark(category string, threshold entity.AlertType) {
	s.shown[alertKey{Category: category, Threshold: threshold}] = struct{}{}
}

// Snapshot returns the persisted form of the state. Keys are sorted.
func (s *AlertState) Snapshot() adapter.AlertStateRecord {
	keys := make([]string, 0, len(s.shown))
	for k := range s.shown {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	return adapter.AlertStateRecord{
		Period:    s.period,
		Evaluated: s.evaluated,
		Shown:     keys,
	}
}

// RestoreAlertState rebuilds a state from its persisted form. Malformed keys
// are skipped.
func RestoreAlertState(record adapter.AlertStateRecord) *AlertState {
	s := NewAlertState()
	s.period = record.Period
	s.evaluated = record.Evaluated
	for _, raw := range record.Shown {
		i := strings.LastIndex(raw, ":")
		if i <= 0 || i == len(raw)-1 {
			continue
		}
		s.mark(raw[:i], entity.AlertType(raw[i+1:]))
	}
	return s
}

// Evaluate returns the alerts that became due since the last evaluation and
// records them in state. The first evaluation only records what is already
// crossed and emits nothing. A change of calendar month resets the shown-set.
func Evaluate(state *AlertState, budgets []entity.Budget, now time.Time, thresholds valueobject.AlertThresholds) []entity.BudgetAlert {
	alerts := []entity.BudgetAlert{}

	if period := valueobject.MonthKey(now); state.period != period {
		state.ResetForNewPeriod(period)
	}

	if len(budgets) == 0 {
		return alerts
	}

	if !state.evaluated {
		for _, b := range budgets {
			if !b.Limit.IsPositive() {
				continue
			}
			for _, threshold := range thresholds.Crossed(PercentUsed(b)) {
				state.mark(b.Category, threshold)
			}
		}
		state.evaluated = true
		return alerts
	}

	for _, b := range budgets {
		if !b.Limit.IsPositive() {
			continue
		}
		percent := PercentUsed(b)
		alertType, ok := thresholds.Classify(percent)
		if !ok || state.Has(b.Category, alertType) {
			continue
		}
		state.mark(b.Category, alertType)
		alerts = append(alerts, newAlert(b, percent, alertType))
	}

	return alerts
}

// CurrentAlerts lists every budget that is currently past a threshold,
// regardless of what has been shown.
func CurrentAlerts(budgets []entity.Budget, thresholds valueobject.AlertThresholds) []entity.BudgetAlert {
	alerts := []entity.BudgetAlert{}
	for _, b := range budgets {
		if !b.Limit.IsPositive() {
			continue
		}
		percent := PercentUsed(b)
		if alertType, ok := thresholds.Classify(percent); ok {
			alerts = append(alerts, newAlert(b, percent, alertType))
		}
	}
	return alerts
}

// SplitAlerts separates exceeded alerts from warning and critical ones.
func SplitAlerts(alerts []entity.BudgetAlert) (exceeded, warnings []entity.BudgetAlert) {
	exceeded = []entity.BudgetAlert{}
	warnings = []entity.BudgetAlert{}
	for _, a := range alerts {
		if a.Type == entity.AlertTypeExceeded {
			exceeded = append(exceeded, a)
		} else {
			warnings = append(warnings, a)
		}
	}
	return exceeded, warnings
}

func newAlert(b entity.Budget, percent int, alertType entity.AlertType) entity.BudgetAlert {
	return entity.BudgetAlert{
		Category:    b.Category,
		Limit:       b.Limit,
		Spent:       b.Spent,
		PercentUsed: percent,
		Type:        alertType,
	}
}
