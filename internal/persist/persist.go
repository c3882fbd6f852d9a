// Package persist defines the persistence port for the entry collection:
// the whole collection is serialized as one JSON blob stored under a fixed
// record name, whatever the backend.
package persist

import "context"

// RecordName is the fixed key the collection blob is stored under.
const RecordName = "runlog:entries"

// Store saves and loads the full entry collection as a single blob.
type Store interface {
	Save(ctx context.Context, payload []byte) error
	Load(ctx context.Context) ([]byte, error)
	Close() error
}
