package core

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-06-17", "2024-06-17"}, // Monday maps to itself
		{"2024-06-18", "2024-06-17"},
		{"2024-06-20", "2024-06-17"}, // Thursday
		{"2024-06-22", "2024-06-17"}, // Saturday
		{"2024-06-23", "2024-06-17"}, // Sunday goes back six days
		{"2024-06-24", "2024-06-24"}, // next Monday
		{"2024-01-01", "2024-01-01"}, // year boundary, a Monday
		{"2025-01-01", "2024-12-30"}, // week spanning the year boundary
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.in, err)
		}
		got := StartOfWeek(d.Time)
		if got.Format("2006-01-02") != tc.want {
			t.Fatalf("StartOfWeek(%s) = %s, want %s", tc.in, got.Format("2006-01-02"), tc.want)
		}
		if got.Weekday() != time.Monday {
			t.Fatalf("StartOfWeek(%s) falls on %s, want Monday", tc.in, got.Weekday())
		}
	}
}

func TestStartOfWeekProperties(t *testing.T) {
	// Walk a year and a half of days: the week start must be a Monday,
	// at or before the day, and less than seven days back.
	day := NewDate(2024, 1, 1).Time
	for i := 0; i < 550; i++ {
		ws := StartOfWeek(day)
		if ws.Weekday() != time.Monday {
			t.Fatalf("%s: week start %s is not a Monday", day, ws)
		}
		if ws.After(day) {
			t.Fatalf("%s: week start %s is after the day", day, ws)
		}
		if day.Sub(ws) >= 7*24*time.Hour {
			t.Fatalf("%s: week start %s is more than a week back", day, ws)
		}
		day = day.AddDate(0, 0, 1)
	}
}

func TestPeriodStarts(t *testing.T) {
	ref := NewDate(2024, 6, 20).Time

	if got := StartOfMonth(ref); !got.Equal(NewDate(2024, 6, 1).Time) {
		t.Fatalf("StartOfMonth = %s", got)
	}
	if got := StartOfYear(ref); !got.Equal(NewDate(2024, 1, 1).Time) {
		t.Fatalf("StartOfYear = %s", got)
	}
	if got := StartOfDay(ref); !got.Equal(NewDate(2024, 6, 20).Time) {
		t.Fatalf("StartOfDay = %s", got)
	}
	if got := EndExclusiveNextDay(ref); !got.Equal(NewDate(2024, 6, 21).Time) {
		t.Fatalf("EndExclusiveNextDay = %s", got)
	}
}

func TestStartOfDayStripsTimeOfDay(t *testing.T) {
	ref := time.Date(2024, 6, 20, 23, 59, 59, 0, time.Local)
	if got := StartOfDay(ref); !got.Equal(NewDate(2024, 6, 20).Time) {
		t.Fatalf("StartOfDay = %s", got)
	}
}

func TestWithinRange(t *testing.T) {
	start := NewDate(2024, 6, 1).Time
	end := NewDate(2024, 6, 21).Time

	cases := []struct {
		d    Date
		want bool
	}{
		{NewDate(2024, 6, 1), true},   // inclusive lower bound
		{NewDate(2024, 6, 20), true},  // last day inside
		{NewDate(2024, 6, 21), false}, // exclusive upper bound
		{NewDate(2024, 5, 31), false},
	}
	for _, tc := range cases {
		if got := WithinRange(tc.d.Time, start, end); got != tc.want {
			t.Fatalf("WithinRange(%s) = %v, want %v", tc.d, got, tc.want)
		}
	}
}
