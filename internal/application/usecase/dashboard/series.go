package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paisa-buddy/backend/internal/domain/entity"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
)

const (
	// WeeklyWindowDays is the trailing window of the weekday pattern.
	WeeklyWindowDays = 30

	// ProjectionBaseMonths is how many trailing months feed the projection.
	ProjectionBaseMonths = 3

	// ProjectedMonths is how many future months are projected.
	ProjectedMonths = 2
)

// MonthlyNetPoint is one month of the net cash-flow series. Exactly one of
// Actual and Projected is set.
type MonthlyNetPoint struct {
	Month     string // YYYY-MM
	Label     string
	Actual    *decimal.Decimal
	Projected *decimal.Decimal
}

// DayFlow is the income and expense of one calendar day.
type DayFlow struct {
	Date    time.Time
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// WeeklySpending buckets expenses from the trailing 30 days by weekday,
// Monday first. All seven buckets are always present.
func WeeklySpending(transactions []entity.Transaction, now time.Time) []entity.DaySpending {
	buckets := make(map[string]decimal.Decimal, len(valueobject.WeekdayLabels))
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		date := valueobject.ParseDate(tx.Date, now)
		age := valueobject.DaysBetween(date, now)
		if age < 0 || age > WeeklyWindowDays {
			continue
		}
		label := valueobject.WeekdayLabel(date)
		buckets[label] = buckets[label].Add(tx.Amount.Abs())
	}

	spending := make([]entity.DaySpending, 0, len(valueobject.WeekdayLabels))
	for _, label := range valueobject.WeekdayLabels {
		amount, ok := buckets[label]
		if !ok {
			amount = decimal.Zero
		}
		spending = append(spending, entity.DaySpending{Day: label, Amount: amount})
	}
	return spending
}

// TopDay returns the highest weekday bucket, or nil when every bucket is zero.
func TopDay(spending []entity.DaySpending) *entity.DaySpending {
	var top *entity.DaySpending
	for i := range spending {
		if top == nil || spending[i].Amount.GreaterThan(top.Amount) {
			top = &spending[i]
		}
	}
	if top == nil || !top.Amount.IsPositive() {
		return nil
	}
	result := *top
	return &result
}

// MonthlyNet returns the signed net of every month with activity, oldest
// first, followed by two projected months holding the trailing three-month
// average. The projection is omitted when that average is zero.
func MonthlyNet(transactions []entity.Transaction, now time.Time) []MonthlyNetPoint {
	nets := make(map[string]decimal.Decimal)
	starts := make(map[string]time.Time)
	for _, tx := range transactions {
		date := valueobject.ParseDate(tx.Date, now)
		key := valueobject.MonthKey(date)
		if _, ok := starts[key]; !ok {
			starts[key] = valueobject.StartOfMonth(date)
		}
		nets[key] = nets[key].Add(tx.Amount)
	}

	keys := make([]string, 0, len(nets))
	for k := range nets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]MonthlyNetPoint, 0, len(keys)+ProjectedMonths)
	for _, k := range keys {
		actual := nets[k]
		series = append(series, MonthlyNetPoint{
			Month:  k,
			Label:  MonthLabel(starts[k]),
			Actual: &actual,
		})
	}

	recent := keys
	if len(recent) > ProjectionBaseMonths {
		recent = recent[len(recent)-ProjectionBaseMonths:]
	}
	if len(recent) == 0 {
		return series
	}

	sum := decimal.Zero
	for _, k := range recent {
		sum = sum.Add(nets[k])
	}
	average := sum.Div(decimal.NewFromInt(int64(len(recent))))
	if average.IsZero() {
		return series
	}
	average = average.Round(2)

	for i := 1; i <= ProjectedMonths; i++ {
		month := valueobject.AddMonths(now, i)
		projected := average
		series = append(series, MonthlyNetPoint{
			Month:     valueobject.MonthKey(month),
			Label:     MonthLabel(month),
			Projected: &projected,
		})
	}
	return series
}

// DailySpending returns income and expense per calendar day for the latest
// limit days with activity, oldest first.
func DailySpending(transactions []entity.Transaction, now time.Time, limit int) []DayFlow {
	flows := make(map[time.Time]*DayFlow)
	for _, tx := range transactions {
		day := valueobject.TruncateDay(valueobject.ParseDate(tx.Date, now))
		flow, ok := flows[day]
		if !ok {
			flow = &DayFlow{Date: day, Label: DayLabel(day), Income: decimal.Zero, Expense: decimal.Zero}
			flows[day] = flow
		}
		switch {
		case tx.IsIncome():
			flow.Income = flow.Income.Add(tx.Amount)
		case tx.IsExpense():
			flow.Expense = flow.Expense.Add(tx.Amount.Abs())
		}
	}

	days := make([]DayFlow, 0, len(flows))
	for _, flow := range flows {
		days = append(days, *flow)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})
	if limit > 0 && len(days) > limit {
		days = days[:limit]
	}

	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return days
}

// RecentTransactions returns up to limit transactions, newest date first.
// Transactions on the same date keep their input order.
func RecentTransactions(transactions []entity.Transaction, now time.Time, limit int) []entity.Transaction {
	type dated struct {
		tx   entity.Transaction
		date time.Time
	}

	sorted := make([]dated, 0, len(transactions))
	for _, tx := range transactions {
		sorted = append(sorted, dated{tx: tx, date: valueobject.ParseDate(tx.Date, now)})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].date.After(sorted[j].date)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]entity.Transaction, 0, len(sorted))
	for _, d := range sorted {
		recent = append(recent, d.tx)
	}
	return recent
}
