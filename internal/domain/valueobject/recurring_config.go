// Package valueobject contains domain value objects for the Paisa Buddy system.
package valueobject

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RecurringConfig contains the configuration for recurring payment detection.
type RecurringConfig struct {
	// Amounts are grouped by rounding to the nearest multiple of this value.
	AmountTolerance decimal.Decimal // 50

	// A group needs at least this many transactions to form a pattern.
	MinOccurrences int // 2

	// Mean gap acceptance band, in days.
	MinGapDays float64 // 5
	MaxGapDays float64 // 400

	// Frequency breakpoints on the mean gap, in days (inclusive upper bounds).
	WeeklyMaxDays    float64 // 10
	MonthlyMaxDays   float64 // 40
	QuarterlyMaxDays float64 // 100

	// Window for upcoming payments, in days.
	UpcomingDays int // 7

	SubscriptionKeywords KeywordSet
	BillKeywords         KeywordSet
}

// DefaultSubscriptionKeywords are streaming and membership vendors.
var DefaultSubscriptionKeywords = []string{
	"netflix", "spotify", "amazon prime", "hotstar", "disney", "youtube", "premium",
	"subscription", "membership", "zee5", "sonyliv", "jio", "airtel", "vodafone",
	"google one", "icloud", "adobe", "microsoft", "linkedin", "gym", "fitness",
}

// DefaultBillKeywords are utility, loan and rent terms.
var DefaultBillKeywords = []string{
	"electricity", "electric", "power", "water", "gas", "internet", "broadband",
	"wifi", "phone", "mobile", "rent", "emi", "loan", "insurance", "bill",
}

// DefaultRecurringConfig returns the default detection configuration.
func DefaultRecurringConfig() RecurringConfig {
	return RecurringConfig{
		AmountTolerance:      decimal.NewFromInt(50),
		MinOccurrences:       2,
		MinGapDays:           5,
		MaxGapDays:           400,
		WeeklyMaxDays:        10,
		MonthlyMaxDays:       40,
		QuarterlyMaxDays:     100,
		UpcomingDays:         7,
		SubscriptionKeywords: NewKeywordSet(DefaultSubscriptionKeywords...),
		BillKeywords:         NewKeywordSet(DefaultBillKeywords...),
	}
}

// AmountBucket rounds an absolute amount to the nearest tolerance multiple.
// A non-positive tolerance disables bucketing and rounds to whole units.
func (c RecurringConfig) AmountBucket(amount decimal.Decimal) int64 {
	abs := amount.Abs()
	if !c.AmountTolerance.IsPositive() {
		return abs.Round(0).IntPart()
	}
	return abs.Div(c.AmountTolerance).Round(0).Mul(c.AmountTolerance).IntPart()
}

// IsAcceptedGap reports whether a mean gap counts as recurrence.
func (c RecurringConfig) IsAcceptedGap(avgDays float64) bool {
	return avgDays >= c.MinGapDays && avgDays <= c.MaxGapDays
}

var lower = cases.Lower(language.Und)

// NormalizeName lower-cases and trims a transaction name for grouping.
func NormalizeName(name string) string {
	return lower.String(strings.TrimSpace(name))
}

// KeywordSet is a case-insensitive substring matcher over a keyword list.
// Keywords may contain '*' wildcards.
type KeywordSet struct {
	patterns []string
}

// NewKeywordSet builds a KeywordSet, skipping blank keywords.
func NewKeywordSet(keywords ...string) KeywordSet {
	patterns := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = NormalizeName(kw)
		if kw == "" {
			continue
		}
		patterns = append(patterns, "*"+kw+"*")
	}
	return KeywordSet{patterns: patterns}
}

// Len returns the number of keywords in the set.
func (s KeywordSet) Len() int {
	return len(s.patterns)
}

// MatchesAny reports whether any of the values contains any keyword.
func (s KeywordSet) MatchesAny(values ...string) bool {
	for _, v := range values {
		v = NormalizeName(v)
		for _, p := range s.patterns {
			if glob.Glob(p, v) {
				return true
			}
		}
	}
	return false
}
