package core

import "time"

// Totals are the rolling to-date sums over one entry collection.
type Totals struct {
	Week  Quantity `json:"week"`
	Month Quantity `json:"month"`
	Year  Quantity `json:"year"`
	All   Quantity `json:"all"`
}

// ComputeTotals sums the collection in a single pass against the reference
// instant. An entry counts toward a period when its date falls in
// [start of period, start of tomorrow), so entries dated today are included
// in every period. Entries without a usable date are skipped entirely; the
// result does not depend on the order of the input.
func ComputeTotals(entries []Entry, ref time.Time) Totals {
	var (
		weekStart  = StartOfWeek(ref)
		monthStart = StartOfMonth(ref)
		yearStart  = StartOfYear(ref)
		end        = EndExclusiveNextDay(ref)
	)

	var t Totals
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		t.All = t.All.Add(e.Quantity)
		if WithinRange(e.Date.Time, yearStart, end) {
			t.Year = t.Year.Add(e.Quantity)
		}
		if WithinRange(e.Date.Time, monthStart, end) {
			t.Month = t.Month.Add(e.Quantity)
		}
		if WithinRange(e.Date.Time, weekStart, end) {
			t.Week = t.Week.Add(e.Quantity)
		}
	}
	return t
}
