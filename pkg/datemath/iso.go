package datemath

import (
	"fmt"
	"time"
)

// ParseDate parses a strict YYYY-MM-DD date at midnight in loc.
func ParseDate(iso string, loc *time.Location) (time.Time, error) {
	if len(iso) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", iso)
	}
	t, err := time.ParseInLocation(DateLayout, iso, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", iso, err)
	}
	return t, nil
}

// IsDate reports whether iso is a well-formed calendar date.
func IsDate(iso string) bool {
	_, err := ParseDate(iso, time.UTC)
	return err == nil
}

// FormatDate renders t's wall-clock date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseMonth parses YYYY-MM and returns the year and month.
func ParseMonth(s string) (int, time.Month, error) {
	if len(s) != len(MonthLayout) {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t.Year(), t.Month(), nil
}

// IsTime reports whether s is a zero-padded 24h HH:MM wall-clock time.
// Zero padding keeps times sortable as plain strings.
func IsTime(s string) bool {
	if len(s) != len(TimeLayout) {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// MonthBounds returns the first and last day of the month as ISO dates.
// Out-of-range months are normalised the same way time.Date does.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return FormatDate(first), FormatDate(last)
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstOfMonth returns midnight on the first day of t's month in t's location.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// NextQuarterHour rounds t up to the next quarter hour, dropping seconds. A
// time already on a quarter hour keeps its minute.
func NextQuarterHour(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	if rem := t.Minute() % 15; rem != 0 {
		t = t.Add(time.Duration(15-rem) * time.Minute)
	}
	return t
}
