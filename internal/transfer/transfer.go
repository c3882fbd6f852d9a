// Package transfer handles backup export and merge-on-import of the entry
// collection as a JSON file.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"runlog/internal/core"
)

// ErrNotArray is returned when an import payload's top level is anything
// other than a JSON array.
var ErrNotArray = errors.New("import payload is not an entry array")

// ExportFileName returns the download name for a backup taken now,
// e.g. runs_2024-06-20.json.
func ExportFileName(now time.Time) string {
	return "runs_" + now.Format("2006-01-02") + ".json"
}

// Export renders the collection as indented JSON suitable for a backup file.
func Export(entries []core.Entry) ([]byte, error) {
	if entries == nil {
		entries = []core.Entry{}
	}
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return out, nil
}

// ParseImport validates an import payload and returns the normalized entries
// ready to merge. The top level must be an array; otherwise the import fails
// with zero entries. Individual records missing a date or carrying a
// non-positive quantity are silently dropped, and records without an id get
// a fresh one, since a round-tripped export may legitimately lack them only
// when damaged.
func ParseImport(data []byte) ([]core.Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var drafts []core.Draft
	if err := json.Unmarshal(trimmed, &drafts); err != nil {
		return nil, fmt.Errorf("parse import payload: %w", err)
	}

	out := make([]core.Entry, 0, len(drafts))
	for _, d := range drafts {
		e, err := core.NormalizeImport(d)
		if err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
