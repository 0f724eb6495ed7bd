package dashboard

import (
	"fmt"
	"time"
)

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// MonthLabel generates a chart label for a month, e.g. "Mar 2025".
func MonthLabel(date time.Time) string {
	date = date.UTC()
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
}

// DayLabel generates a chart label for a day, e.g. "Mar 5".
func DayLabel(date time.Time) string {
	date = date.UTC()
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Day())
}
