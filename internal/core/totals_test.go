package core

import "testing"

func mustEntry(t *testing.T, date string, hundredths int64) Entry {
	t.Helper()
	e, err := NormalizeImport(Draft{Date: date, Quantity: Quantity{Hundredths: hundredths}})
	if err != nil {
		t.Fatalf("entry %s: %v", date, err)
	}
	return e
}

func TestComputeTotals(t *testing.T) {
	// Reference instant: Thursday 2024-06-20. Week starts Monday 06-17,
	// month starts 06-01, year starts 01-01, upper bound is 06-21.
	ref := NewDate(2024, 6, 20).Time
	entries := []Entry{
		mustEntry(t, "2024-01-01", 1000),
		mustEntry(t, "2024-06-15", 500), // Saturday of the previous week
		mustEntry(t, "2024-06-20", 300), // today
	}

	got := ComputeTotals(entries, ref)
	if got.All.Hundredths != 1800 {
		t.Fatalf("all = %s, want 18.00", got.All)
	}
	if got.Year.Hundredths != 1800 {
		t.Fatalf("year = %s, want 18.00", got.Year)
	}
	if got.Month.Hundredths != 800 {
		t.Fatalf("month = %s, want 8.00", got.Month)
	}
	if got.Week.Hundredths != 300 {
		t.Fatalf("week = %s, want 3.00", got.Week)
	}
}

func TestComputeTotalsBoundaries(t *testing.T) {
	ref := NewDate(2024, 6, 20).Time
	cases := []struct {
		date                   string
		week, month, year, all int64
	}{
		{"2024-06-21", 0, 0, 0, 100},       // tomorrow is outside every period
		{"2024-06-17", 100, 100, 100, 100}, // Monday boundary inclusive
		{"2024-06-16", 0, 100, 100, 100},   // Sunday before the week start
		{"2024-06-01", 0, 100, 100, 100},   // month boundary inclusive
		{"2024-05-31", 0, 0, 100, 100},
		{"2024-01-01", 0, 0, 100, 100}, // year boundary inclusive
		{"2023-12-31", 0, 0, 0, 100},
	}
	for _, tc := range cases {
		got := ComputeTotals([]Entry{mustEntry(t, tc.date, 100)}, ref)
		if got.Week.Hundredths != tc.week || got.Month.Hundredths != tc.month ||
			got.Year.Hundredths != tc.year || got.All.Hundredths != tc.all {
			t.Fatalf("%s: totals = %+v", tc.date, got)
		}
	}
}

func TestComputeTotalsPermutationInvariant(t *testing.T) {
	ref := NewDate(2024, 6, 20).Time
	entries := []Entry{
		mustEntry(t, "2024-01-01", 1000),
		mustEntry(t, "2024-06-15", 500),
		mustEntry(t, "2024-06-20", 300),
		mustEntry(t, "2024-06-18", 125),
	}
	want := ComputeTotals(entries, ref)

	reversed := make([]Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}
	if got := ComputeTotals(reversed, ref); got != want {
		t.Fatalf("reversed input changed totals: %+v vs %+v", got, want)
	}

	rotated := append(entries[2:], entries[:2]...)
	if got := ComputeTotals(rotated, ref); got != want {
		t.Fatalf("rotated input changed totals: %+v vs %+v", got, want)
	}
}

func TestComputeTotalsSkipsZeroDates(t *testing.T) {
	ref := NewDate(2024, 6, 20).Time
	entries := []Entry{
		{ID: "x", Quantity: Quantity{Hundredths: 100}}, // zero date, defensive
		mustEntry(t, "2024-06-20", 300),
	}
	got := ComputeTotals(entries, ref)
	if got.All.Hundredths != 300 {
		t.Fatalf("all = %s, want undated entry skipped", got.All)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil, NewDate(2024, 6, 20).Time)
	if got != (Totals{}) {
		t.Fatalf("totals over empty collection = %+v", got)
	}
}
