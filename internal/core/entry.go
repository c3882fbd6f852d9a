package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidDate     = errors.New("invalid date")
	ErrFutureDate      = errors.New("date is in the future")
)

// Date is a naive calendar date: a (year, month, day) triple with no
// time-of-day and no timezone meaning. Internally it is midnight UTC so
// dates compare directly against the calendar boundaries.
type Date struct {
	time.Time
}

// NewDate builds a date from its components without validation.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses the canonical YYYY-MM-DD form by splitting on "-".
// A missing or non-numeric component, or a triple that does not name a real
// calendar day (2024-02-31), returns ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, ErrInvalidDate
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	d := NewDate(year, month, day)
	// time.Date normalizes overflow (Feb 31 -> Mar 2); a changed component
	// means the input was not a real calendar day.
	y, m, dd := d.Date()
	if y != year || int(m) != month || dd != day {
		return Date{}, ErrInvalidDate
	}
	return d, nil
}

// String renders the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MarshalJSON emits the date as its canonical string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses the canonical string form. The zero value is kept for
// unparseable dates so a bad record can be dropped instead of failing the
// whole payload.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}

// Entry is one logged activity record. Every stored entry has a non-empty
// id, a valid date and a strictly positive quantity.
type Entry struct {
	ID       string   `json:"id"`
	Date     Date     `json:"date"`
	Quantity Quantity `json:"quantity"`
	Note     string   `json:"note"`
}

// Draft is an entry as submitted or as loaded from a blob, before
// normalization. Its field layout doubles as the wire shape.
type Draft struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Quantity Quantity `json:"quantity"`
	Note     string   `json:"note"`
}

func (d Draft) normalize() (Entry, error) {
	if !d.Quantity.Positive() {
		return Entry{}, ErrInvalidQuantity
	}
	date, err := ParseDate(d.Date)
	if err != nil {
		return Entry{}, err
	}
	return Entry{ID: d.ID, Date: date, Quantity: d.Quantity, Note: d.Note}, nil
}

// NormalizeSubmission applies the stricter user-input rules: the note is
// trimmed, dates from tomorrow onward are refused, and a missing id gets a
// fresh one. now is the reference instant for the future-date check.
func NormalizeSubmission(d Draft, now time.Time) (Entry, error) {
	e, err := d.normalize()
	if err != nil {
		return Entry{}, err
	}
	if !e.Date.Before(EndExclusiveNextDay(now)) {
		return Entry{}, ErrFutureDate
	}
	e.Note = strings.TrimSpace(e.Note)
	if e.ID == "" {
		e.ID = GenerateID()
	}
	return e, nil
}

// NormalizeImport is the permissive load-path variant used for persisted and
// imported records: no future-date check, the note is kept as stored, and a
// missing id is filled in rather than rejected.
func NormalizeImport(d Draft) (Entry, error) {
	e, err := d.normalize()
	if err != nil {
		return Entry{}, err
	}
	if e.ID == "" {
		e.ID = GenerateID()
	}
	return e, nil
}

// GenerateID returns an id unique within one collection with overwhelming
// probability: a millisecond timestamp prefix plus a random suffix. No
// coordination or global counter is involved.
func GenerateID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
