// Package valueobject contains domain value objects for the Paisa Buddy system.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// AlertThresholds are the budget usage percentages that raise alerts.
type AlertThresholds struct {
	Warning  int // 80
	Critical int // 90
	Exceeded int // 100
}

// DefaultAlertThresholds returns the default alert thresholds.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		Warning:  80,
		Critical: 90,
		Exceeded: 100,
	}
}

// Classify maps a usage percentage to an alert type. The second result is
// false when no threshold is crossed.
func (t AlertThresholds) Classify(percentUsed int) (entity.AlertType, bool) {
	switch {
	case percentUsed >= t.Exceeded:
		return entity.AlertTypeExceeded, true
	case percentUsed >= t.Critical:
		return entity.AlertTypeCritical, true
	case percentUsed >= t.Warning:
		return entity.AlertTypeWarning, true
	default:
		return "", false
	}
}

// Crossed returns every threshold reached by percentUsed, lowest first.
func (t AlertThresholds) Crossed(percentUsed int) []entity.AlertType {
	var crossed []entity.AlertType
	if percentUsed >= t.Warning {
		crossed = append(crossed, entity.AlertTypeWarning)
	}
	if percentUsed >= t.Critical {
		crossed = append(crossed, entity.AlertTypeCritical)
	}
	if percentUsed >= t.Exceeded {
		crossed = append(crossed, entity.AlertTypeExceeded)
	}
	return crossed
}

var hundred = decimal.NewFromInt(100)

// Percent returns round(part / whole * 100), or 0 when whole is not positive.
func Percent(part, whole decimal.Decimal) int {
	if !whole.IsPositive() {
		return 0
	}
	return int(part.Mul(hundred).Div(whole).Round(0).IntPart())
}
