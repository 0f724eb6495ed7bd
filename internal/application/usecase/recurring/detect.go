// Package recurring contains recurring payment detection.
package recurring

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

// Result is the output of a detection run.
type Result struct {
	Patterns              []entity.RecurringPattern
	MonthlyRecurringTotal decimal.Decimal
	UpcomingThisWeek      []entity.RecurringPattern
	Subscriptions         []entity.RecurringPattern
	Bills                 []entity.RecurringPattern
}

// groupKey identifies transactions that look like the same payment.
type groupKey struct {
	Name         string
	AmountBucket int64
}

// datedTransaction pairs a transaction with its parsed date.
type datedTransaction struct {
	tx   entity.Transaction
	date time.Time
}

// groups is an insertion-ordered group-by accumulator.
type groups struct {
	keys    []groupKey
	members map[groupKey][]datedTransaction
}

func newGroups() *groups {
	return &groups{members: make(map[groupKey][]datedTransaction)}
}

func (g *groups) add(key groupKey, dt datedTransaction) {
	if _, ok := g.members[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.members[key] = append(g.members[key], dt)
}

// Detect finds recurring expenses in the transaction history. It does not
// modify transactions. now is used for parsing fallbacks and the upcoming
// window.
func Detect(transactions []entity.Transaction, now time.Time, cfg valueobject.RecurringConfig) Result {
	result := Result{
		Patterns:              []entity.RecurringPattern{},
		MonthlyRecurringTotal: decimal.Zero,
		UpcomingThisWeek:      []entity.RecurringPattern{},
		Subscriptions:         []entity.RecurringPattern{},
		Bills:                 []entity.RecurringPattern{},
	}
	if len(transactions) == 0 {
		return result
	}

	grouped := newGroups()
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		key := groupKey{
			Name:         valueobject.NormalizeName(tx.Name),
			AmountBucket: cfg.AmountBucket(tx.Amount),
		}
		grouped.add(key, datedTransaction{tx: tx, date: valueobject.ParseDate(tx.Date, now)})
	}

	minOccurrences := cfg.MinOccurrences
	if minOccurrences < 2 {
		minOccurrences = 2
	}

	for _, key := range grouped.keys {
		members := grouped.members[key]
		if len(members) < minOccurrences {
			continue
		}
		if pattern, ok := buildPattern(members, cfg); ok {
			result.Patterns = append(result.Patterns, pattern)
		}
	}

	sort.SliceStable(result.Patterns, func(i, j int) bool {
		return result.Patterns[i].Amount.GreaterThan(result.Patterns[j].Amount)
	})

	monthly := decimal.Zero
	for _, p := range result.Patterns {
		monthly = monthly.Add(p.MonthlyEquivalent())

		if valueobject.IsWithinNextDays(p.NextExpectedDate, now, cfg.UpcomingDays) {
			result.UpcomingThisWeek = append(result.UpcomingThisWeek, p)
		}
		if cfg.SubscriptionKeywords.MatchesAny(p.Name) {
			result.Subscriptions = append(result.Subscriptions, p)
		}
		if cfg.BillKeywords.MatchesAny(p.Name, p.Category) {
			result.Bills = append(result.Bills, p)
		}
	}
	result.MonthlyRecurringTotal = monthly.Round(0)

	return result
}

// buildPattern turns one group into a pattern, or reports false when the
// mean gap falls outside the accepted band.
func buildPattern(members []datedTransaction, cfg valueobject.RecurringConfig) (entity.RecurringPattern, bool) {
	sorted := make([]datedTransaction, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].date.Before(sorted[j].date)
	})

	var totalDays float64
	for i := 1; i < len(sorted); i++ {
		totalDays += valueobject.DaysBetween(sorted[i-1].date, sorted[i].date)
	}
	avgDays := totalDays / float64(len(sorted)-1)

	if !cfg.IsAcceptedGap(avgDays) {
		return entity.RecurringPattern{}, false
	}

	total := decimal.Zero
	for _, m := range sorted {
		total = total.Add(m.tx.Amount.Abs())
	}
	avgAmount := total.Div(decimal.NewFromInt(int64(len(sorted))))

	last := sorted[len(sorted)-1]
	return entity.RecurringPattern{
		Name:             last.tx.Name,
		Category:         last.tx.Category,
		Amount:           avgAmount.Round(0),
		Frequency:        classifyFrequency(avgDays, cfg),
		Occurrences:      len(sorted),
		LastDate:         last.date,
		NextExpectedDate: valueobject.TruncateDay(valueobject.AddDays(last.date, avgDays)),
		AvgDaysBetween:   int(decimal.NewFromFloat(avgDays).Round(0).IntPart()),
	}, true
}

// classifyFrequency maps a mean gap in days to a frequency band.
func classifyFrequency(avgDays float64, cfg valueobject.RecurringConfig) entity.Frequency {
	switch {
	case avgDays <= cfg.WeeklyMaxDays:
		return entity.FrequencyWeekly
	case avgDays <= cfg.MonthlyMaxDays:
		return entity.FrequencyMonthly
	case avgDays <= cfg.QuarterlyMaxDays:
		return entity.FrequencyQuarterly
	default:
		return entity.FrequencyYearly
	}
}
