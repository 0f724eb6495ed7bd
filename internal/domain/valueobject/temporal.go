// Package valueobject contains domain value objects for the Paisa Buddy system.
package valueobject

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// DateLayout is the canonical calendar date format used in outputs.
const DateLayout = "2006-01-02"

// MonthLayout is the year-month key format.
const MonthLayout = "2006-01"

const day = 24 * time.Hour

// dateFormats lists every textual date format ParseDate accepts, tried in
// order. Day-first is tried before month-first for slash dates.
var dateFormats = []string{
	time.RFC3339,
	"2006-1-2T15:04:05",
	"2006-1-2 15:04:05",
	"2006-1-2",
	"2-1-2006",
	"2/1/2006",
	"1/2/2006",
	"2006/1/2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
	"Mon, Jan 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
}

var calendar = &now.Config{
	WeekStartDay: time.Monday,
	TimeLocation: time.UTC,
	TimeFormats:  dateFormats,
}

// ParseDate parses a calendar date leniently. Empty or unparseable input
// returns reference, so aggregation never fails on bad data.
func ParseDate(raw string, reference time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return reference
	}

	t, err := calendar.With(reference.UTC()).Parse(raw)
	if err != nil {
		return reference
	}
	return t.UTC()
}

// AddDays returns t moved by n days. n may be negative or fractional.
func AddDays(t time.Time, n float64) time.Time {
	return t.Add(time.Duration(n * float64(day)))
}

// DaysBetween returns (b - a) in days. Fractions are kept.
func DaysBetween(a, b time.Time) float64 {
	return float64(b.Sub(a)) / float64(day)
}

// IsWithinNextDays reports whether reference <= t <= reference + n days.
func IsWithinNextDays(t, reference time.Time, n int) bool {
	limit := reference.AddDate(0, 0, n)
	return !t.Before(reference) && !t.After(limit)
}

// TruncateDay drops the time of day, in UTC.
func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return calendar.With(t.UTC()).BeginningOfMonth()
}

// StartOfWeek returns midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	return calendar.With(t.UTC()).BeginningOfWeek()
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameWeek reports whether a and b fall in the same Monday-start week.
func SameWeek(a, b time.Time) bool {
	return StartOfWeek(a).Equal(StartOfWeek(b))
}

// MonthKey returns the YYYY-MM key of t.
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}

// AddMonths returns the first day of the month n months after t's month.
// Starting from the first avoids day-of-month overflow.
func AddMonths(t time.Time, n int) time.Time {
	return StartOfMonth(t).AddDate(0, n, 0)
}

// FormatDate formats t as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// WeekdayLabel returns the three-letter English weekday of t.
func WeekdayLabel(t time.Time) string {
	return t.UTC().Weekday().String()[:3]
}

// WeekdayLabels are the canonical Monday-first weekday buckets.
var WeekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
