package core

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"3.1", 310, false},
		{"3,1", 310, false}, // comma separator
		{"3.005", 301, false},
		{"3.004", 300, false},
		{"10", 1000, false},
		{"0.01", 1, false},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseQuantity(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseQuantity(%q) expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseQuantity(%q): %v", tc.in, err)
		}
		if got.Hundredths != tc.want {
			t.Fatalf("ParseQuantity(%q) = %d hundredths, want %d", tc.in, got.Hundredths, tc.want)
		}
	}
}

func TestQuantityFromFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{3.1, 310},
		{3.005, 301}, // half away from zero on the scaled value
		{0, 0},
		{-3, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tc := range cases {
		if got := QuantityFromFloat(tc.in); got.Hundredths != tc.want {
			t.Fatalf("QuantityFromFloat(%v) = %d, want %d", tc.in, got.Hundredths, tc.want)
		}
	}
}

func TestQuantityJSON(t *testing.T) {
	b, err := json.Marshal(Quantity{Hundredths: 301})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "3.01" {
		t.Fatalf("marshal = %s, want 3.01", b)
	}

	cases := []struct {
		in   string
		want int64
	}{
		{`3.01`, 301},
		{`3.005`, 301},
		{`"5.5"`, 550}, // quoted numbers are tolerated
		{`"abc"`, 0},   // garbage coerces to zero, dropped later
		{`-2`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var q Quantity
		if err := json.Unmarshal([]byte(tc.in), &q); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if q.Hundredths != tc.want {
			t.Fatalf("unmarshal %s = %d, want %d", tc.in, q.Hundredths, tc.want)
		}
	}
}

func TestQuantityStringAndAdd(t *testing.T) {
	q := Quantity{Hundredths: 300}.Add(Quantity{Hundredths: 1})
	if q.String() != "3.01" {
		t.Fatalf("String = %q", q.String())
	}
	if q.Float() != 3.01 {
		t.Fatalf("Float = %v", q.Float())
	}
}
