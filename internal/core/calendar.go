package core

import "time"

// Calendar helpers for to-date period boundaries. All results are naive
// calendar dates: midnight of the relevant day, built from the year/month/day
// triple of the input instant and never shifted by timezone conversion.
// Boundaries are constructed in UTC so they compare cleanly against parsed
// entry dates regardless of the caller's location.

// StartOfDay truncates an instant to midnight of its calendar date.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of the ISO week containing t, at midnight.
// Sunday goes back six days; any other weekday goes back weekday-1 days.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	back := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		back = 6
	}
	return day.AddDate(0, 0, -back)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// StartOfYear returns midnight of January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// EndExclusiveNextDay returns midnight of the day after t. Using it as the
// shared exclusive upper bound keeps entries dated today inside every
// to-date range.
func EndExclusiveNextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// WithinRange reports whether start <= d < end.
func WithinRange(d, start, end time.Time) bool {
	return !d.Before(start) && d.Before(end)
}
