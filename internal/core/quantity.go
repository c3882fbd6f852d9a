// Package core holds the entry model, calendar math and aggregation logic
// for the running log. Everything here is pure: no storage, no transport.
package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is a logged amount in hundredths, i.e. canonicalized to two
// decimal places. Keeping an integer representation makes summation exact.
type Quantity struct {
	Hundredths int64
}

// QuantityFromFloat coerces a raw number into a canonical quantity.
// Non-finite or negative input becomes zero; anything else is rounded
// half away from zero on the third decimal, so 3.005 -> 3.01.
func QuantityFromFloat(v float64) Quantity {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Quantity{}
	}
	return quantityFromDecimal(decimal.NewFromFloat(v))
}

// ParseQuantity parses user-typed input. Both dot and comma decimal
// separators are accepted. Returns ErrInvalidQuantity for anything that does
// not yield a strictly positive amount.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return Quantity{}, ErrInvalidQuantity
	}
	q := quantityFromDecimal(d)
	if !q.Positive() {
		return Quantity{}, ErrInvalidQuantity
	}
	return q, nil
}

func quantityFromDecimal(d decimal.Decimal) Quantity {
	return Quantity{Hundredths: d.Round(2).Shift(2).IntPart()}
}

// Positive reports whether the quantity is representable as a stored value.
func (q Quantity) Positive() bool {
	return q.Hundredths > 0
}

// Add returns the exact sum of two quantities.
func (q Quantity) Add(o Quantity) Quantity {
	return Quantity{Hundredths: q.Hundredths + o.Hundredths}
}

// Float returns the quantity as a float64 for display purposes.
// Use hundredths for arithmetic.
func (q Quantity) Float() float64 {
	return float64(q.Hundredths) / 100.0
}

// String renders the canonical two-decimal form, e.g. "3.00".
func (q Quantity) String() string {
	return decimal.New(q.Hundredths, -2).StringFixed(2)
}

// MarshalJSON emits the quantity as a plain JSON number with two decimals.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted numeric string. Anything
// unparseable or negative coerces to zero rather than failing: a zero
// quantity makes the record unrepresentable and normalization drops it.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		*q = Quantity{}
		return nil
	}
	*q = quantityFromDecimal(d)
	return nil
}
