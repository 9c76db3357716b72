// Package dateutil handles calendar dates. Dates are represented as
// time.Time values at midnight UTC so they compare and sort the same way in
// every database driver.
package dateutil

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

// Date truncates t to its calendar date, taken in t's own location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse accepts "2006-01-02" or RFC3339.
func Parse(s string) (time.Time, error) {
	if t, err := time.Parse(Layout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return Date(t), nil
}

// ParseOptional returns nil for an empty string.
func ParseOptional(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// MonthRange returns [first day of t's month, first day of the next month).
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// onDay returns day of the given month, clamped to the month's last day.
func onDay(year int, month time.Month, day int) time.Time {
	if n := daysIn(year, month); day > n {
		day = n
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextOccurrence returns the next date on or after today that falls on the
// given day of month. A due day past the end of a short month lands on that
// month's last day.
func NextOccurrence(today time.Time, day int) time.Time {
	today = Date(today)
	if day < 1 {
		day = 1
	}
	candidate := onDay(today.Year(), today.Month(), day)
	if !candidate.Before(today) {
		return candidate
	}
	next := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return onDay(next.Year(), next.Month(), day)
}
