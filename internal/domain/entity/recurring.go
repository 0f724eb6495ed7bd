// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the band assigned to a recurring pattern from its mean gap.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// RecurringPattern is a repeating expense inferred from transaction history.
// It is recomputed from scratch on every detection run.
type RecurringPattern struct {
	Name             string
	Category         string
	Amount           decimal.Decimal // Rounded mean of absolute amounts
	Frequency        Frequency
	Occurrences      int
	LastDate         time.Time
	NextExpectedDate time.Time
	AvgDaysBetween   int
}

// MonthlyEquivalent normalises the pattern amount to one month.
func (p RecurringPattern) MonthlyEquivalent() decimal.Decimal {
	switch p.Frequency {
	case FrequencyWeekly:
		return p.Amount.Mul(decimal.NewFromInt(4))
	case FrequencyMonthly:
		return p.Amount
	case FrequencyQuarterly:
		return p.Amount.Div(decimal.NewFromInt(3))
	case FrequencyYearly:
		return p.Amount.Div(decimal.NewFromInt(12))
	default:
		return decimal.Zero
	}
}
