package persist

import (
	"testing"

	"runlog/internal/core"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	entries := []core.Entry{
		{ID: "a", Date: core.NewDate(2024, 6, 20), Quantity: core.Quantity{Hundredths: 300}, Note: "tempo"},
		{ID: "b", Date: core.NewDate(2024, 1, 1), Quantity: core.Quantity{Hundredths: 1000}, Note: ""},
	}

	blob, err := Encode(entries)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := Decode(blob)
	if len(got) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(got))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("entry %d: got %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestEncodeNilIsEmptyArray(t *testing.T) {
	blob, err := Encode(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(blob) != "[]" {
		t.Fatalf("encode(nil) = %s, want []", blob)
	}
}

func TestDecodeForgiving(t *testing.T) {
	cases := []struct {
		name string
		blob string
	}{
		{"empty", ""},
		{"garbage", "not json at all"},
		{"object", `{"id":"a"}`},
		{"number", `42`},
		{"null", `null`},
	}
	for _, tc := range cases {
		if got := Decode([]byte(tc.blob)); len(got) != 0 {
			t.Fatalf("%s: decoded %d entries, want empty collection", tc.name, len(got))
		}
	}
}

func TestDecodeDropsUnusableRecords(t *testing.T) {
	blob := []byte(`[
		{"id":"ok","date":"2024-06-20","quantity":3.00,"note":""},
		{"id":"zero","date":"2024-06-20","quantity":0,"note":""},
		{"id":"baddate","date":"garbage","quantity":1.00,"note":""},
		{"date":"2024-06-19","quantity":2.00,"note":"id gets filled"}
	]`)
	got := Decode(blob)
	if len(got) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(got))
	}
	if got[0].ID != "ok" {
		t.Fatalf("first entry id = %q", got[0].ID)
	}
	if got[1].ID == "" {
		t.Fatal("missing id should be filled on load")
	}
}
