package valueobject

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	reference := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "iso date", raw: "2025-03-05", want: date(2025, 3, 5)},
		{name: "surrounding spaces", raw: "  2025-03-05 ", want: date(2025, 3, 5)},
		{name: "rfc3339 keeps time of day", raw: "2025-03-05T10:30:00Z", want: time.Date(2025, 3, 5, 10, 30, 0, 0, time.UTC)},
		{name: "slash date is day first", raw: "05/03/2025", want: date(2025, 3, 5)},
		{name: "month first when day first is impossible", raw: "12/31/2025", want: date(2025, 12, 31)},
		{name: "short month name", raw: "Mar 5, 2025", want: date(2025, 3, 5)},
		{name: "long month name", raw: "5 March 2025", want: date(2025, 3, 5)},
		{name: "empty falls back to reference", raw: "", want: reference},
		{name: "garbage falls back to reference", raw: "next tuesday", want: reference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.raw, reference)
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDayArithmetic(t *testing.T) {
	start := date(2025, 3, 5)

	t.Run("AddDays keeps fractions", func(t *testing.T) {
		got := AddDays(start, 1.5)
		want := time.Date(2025, 3, 6, 12, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("AddDays = %s, want %s", got, want)
		}
	})

	t.Run("DaysBetween is signed", func(t *testing.T) {
		if got := DaysBetween(start, date(2025, 4, 5)); got != 31 {
			t.Errorf("DaysBetween forward = %v, want 31", got)
		}
		if got := DaysBetween(date(2025, 4, 5), start); got != -31 {
			t.Errorf("DaysBetween backward = %v, want -31", got)
		}
	})

	t.Run("IsWithinNextDays is inclusive", func(t *testing.T) {
		reference := date(2025, 3, 15)
		cases := map[time.Time]bool{
			date(2025, 3, 14): false,
			date(2025, 3, 15): true,
			date(2025, 3, 22): true,
			date(2025, 3, 23): false,
		}
		for d, want := range cases {
			if got := IsWithinNextDays(d, reference, 7); got != want {
				t.Errorf("IsWithinNextDays(%s) = %v, want %v", FormatDate(d), got, want)
			}
		}
	})

	t.Run("TruncateDay drops the time of day", func(t *testing.T) {
		got := TruncateDay(time.Date(2025, 3, 5, 23, 59, 59, 0, time.UTC))
		if !got.Equal(start) {
			t.Errorf("TruncateDay = %s, want %s", got, start)
		}
	})
}

func TestCalendarBoundaries(t *testing.T) {
	t.Run("weeks start on Monday", func(t *testing.T) {
		cases := map[time.Time]time.Time{
			date(2025, 3, 10): date(2025, 3, 10),
			date(2025, 3, 15): date(2025, 3, 10),
			date(2025, 3, 16): date(2025, 3, 10),
			date(2025, 3, 17): date(2025, 3, 17),
		}
		for d, want := range cases {
			if got := StartOfWeek(d); !got.Equal(want) {
				t.Errorf("StartOfWeek(%s) = %s, want %s", FormatDate(d), FormatDate(got), FormatDate(want))
			}
		}
	})

	t.Run("SameWeek", func(t *testing.T) {
		if !SameWeek(date(2025, 3, 10), date(2025, 3, 16)) {
			t.Error("Monday and Sunday of one week should match")
		}
		if SameWeek(date(2025, 3, 9), date(2025, 3, 10)) {
			t.Error("Sunday and the following Monday should not match")
		}
	})

	t.Run("SameMonth", func(t *testing.T) {
		if !SameMonth(date(2025, 3, 1), date(2025, 3, 31)) {
			t.Error("first and last of March should match")
		}
		if SameMonth(date(2024, 3, 1), date(2025, 3, 1)) {
			t.Error("March of different years should not match")
		}
	})

	t.Run("StartOfMonth", func(t *testing.T) {
		got := StartOfMonth(time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC))
		if !got.Equal(date(2025, 3, 1)) {
			t.Errorf("StartOfMonth = %s", got)
		}
	})

	t.Run("AddMonths does not overflow short months", func(t *testing.T) {
		got := AddMonths(date(2025, 1, 31), 1)
		if !got.Equal(date(2025, 2, 1)) {
			t.Errorf("AddMonths = %s, want 2025-02-01", FormatDate(got))
		}
		got = AddMonths(date(2025, 1, 31), -1)
		if !got.Equal(date(2024, 12, 1)) {
			t.Errorf("AddMonths = %s, want 2024-12-01", FormatDate(got))
		}
	})
}

func TestFormatting(t *testing.T) {
	d := time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC)

	if got := FormatDate(d); got != "2025-03-15" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := MonthKey(d); got != "2025-03" {
		t.Errorf("MonthKey = %q", got)
	}
	if got := WeekdayLabel(d); got != "Sat" {
		t.Errorf("WeekdayLabel = %q", got)
	}
	if len(WeekdayLabels) != 7 || WeekdayLabels[0] != "Mon" || WeekdayLabels[6] != "Sun" {
		t.Errorf("WeekdayLabels = %v", WeekdayLabels)
	}
}
