// Package biztime provides time helpers for billing calculations.
// All storage and comparison use UTC; expiry is decided on calendar
// dates, not instants.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateOnly truncates a time to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DateBefore reports whether a falls on an earlier UTC calendar date
// than b. Two instants on the same date are never before each other.
func DateBefore(a, b time.Time) bool {
	return DateOnly(a).Before(DateOnly(b))
}

// AddDays advances a time by whole calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
