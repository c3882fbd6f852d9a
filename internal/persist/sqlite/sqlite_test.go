package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runlog.db"), "runlog:entries")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if got != nil {
		t.Fatalf("load empty = %q, want nil", got)
	}

	first := []byte(`[{"id":"a"}]`)
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(first) {
		t.Fatalf("load = %q, want %q", got, first)
	}

	// A second save replaces the blob under the same name.
	second := []byte(`[{"id":"a"},{"id":"b"}]`)
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load again: %v", err)
	}
	if string(got) != string(second) {
		t.Fatalf("load after replace = %q", got)
	}
}
