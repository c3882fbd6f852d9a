package persist

import (
	"encoding/json"
	"log/slog"

	"runlog/internal/core"
)

// Encode serializes the collection as the canonical JSON entry array.
func Encode(entries []core.Entry) ([]byte, error) {
	if entries == nil {
		entries = []core.Entry{}
	}
	return json.Marshal(entries)
}

// Decode parses a stored blob back into entries. Loading is forgiving:
// malformed or non-array data yields an empty collection, and individual
// records that no longer normalize are dropped with a warning. A load never
// fails the caller.
func Decode(data []byte) []core.Entry {
	if len(data) == 0 {
		return nil
	}
	var drafts []core.Draft
	if err := json.Unmarshal(data, &drafts); err != nil {
		slog.Warn("Stored collection is malformed, starting empty", "error", err)
		return nil
	}
	out := make([]core.Entry, 0, len(drafts))
	for _, d := range drafts {
		e, err := core.NormalizeImport(d)
		if err != nil {
			slog.Warn("Dropping unusable stored entry", "id", d.ID, "date", d.Date, "error", err)
			continue
		}
		out = append(out, e)
	}
	return out
}
