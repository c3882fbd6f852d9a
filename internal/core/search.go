package core

import (
	"sort"
	"strings"
)

// Filter returns the entries whose date text, quantity text or note contains
// the query, case-insensitively. An empty query matches everything. The
// result is a fresh slice sorted by date, newest first, with equal dates kept
// in their incoming order.
func Filter(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if q == "" || matchesQuery(e, q) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

func matchesQuery(e Entry, q string) bool {
	return strings.Contains(e.Date.String(), q) ||
		strings.Contains(e.Quantity.String(), q) ||
		strings.Contains(strings.ToLower(e.Note), q)
}
