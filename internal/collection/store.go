// Package collection owns the canonical in-memory entry set. All access goes
// through the Store's methods; callers only ever receive copies, never a
// mutable alias of the underlying state. Every successful mutation writes the
// full collection through the persistence port.
package collection

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"runlog/internal/core"
	"runlog/internal/persist"
)

// ChangeOp names a mutation for change notifications.
type ChangeOp string

const (
	OpAdd    ChangeOp = "add"
	OpRemove ChangeOp = "remove"
	OpClear  ChangeOp = "clear"
	OpMerge  ChangeOp = "merge"
)

// Change describes one applied mutation.
type Change struct {
	Op      ChangeOp
	EntryID string // set for add/remove
	Size    int    // collection size after the mutation
}

// Notifier observes applied mutations, e.g. to publish change events.
type Notifier func(ctx context.Context, c Change)

// Options configure a Store beyond its persistence port.
type Options struct {
	// Notify, when set, is called after each successful mutation.
	Notify Notifier
	// Now supplies the reference instant for submission checks.
	// Defaults to time.Now.
	Now func() time.Time
}

// Store is the authoritative entry collection, addressed by entry id.
type Store struct {
	mu      sync.Mutex
	entries map[string]core.Entry
	blob    persist.Store
	notify  Notifier
	now     func() time.Time
}

// Open loads the persisted collection through blob and wraps it in a Store.
// A missing or malformed blob starts the collection empty; opening never
// fails because of stored data.
func Open(ctx context.Context, blob persist.Store, opts Options) (*Store, error) {
	payload, err := blob.Load(ctx)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]core.Entry)
	for _, e := range persist.Decode(payload) {
		entries[e.ID] = e
	}

	s := &Store{
		entries: entries,
		blob:    blob,
		notify:  opts.Notify,
		now:     opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

// Add validates a submitted draft and inserts the resulting entry. Rejection
// is reported as an error value and leaves the collection untouched. Adding
// with an id already present replaces that entry, which is how an in-place
// edit keeps its merge identity.
func (s *Store) Add(ctx context.Context, d core.Draft) (core.Entry, error) {
	e, err := core.NormalizeSubmission(d, s.now())
	if err != nil {
		return core.Entry{}, err
	}

	s.mu.Lock()
	s.entries[e.ID] = e
	size := len(s.entries)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.emit(ctx, Change{Op: OpAdd, EntryID: e.ID, Size: size})
	return e, nil
}

// Remove deletes the entry with the given id. A miss is a no-op, not an
// error, and triggers no write.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	if _, ok := s.entries[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.entries, id)
	size := len(s.entries)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.emit(ctx, Change{Op: OpRemove, EntryID: id, Size: size})
}

// Clear empties the collection. Confirmation, if any, is the caller's
// responsibility.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.entries = make(map[string]core.Entry)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.emit(ctx, Change{Op: OpClear})
}

// Merge reconciles an already-normalized incoming set into the collection by
// id: entries only in the collection are kept, entries only in the incoming
// set are added, and on an id collision the incoming entry wins. The merged
// state is computed and swapped in one critical section, so no partially
// merged state is ever observable. Merging the same set twice is a no-op the
// second time. Returns the number of incoming entries applied.
func (s *Store) Merge(ctx context.Context, incoming []core.Entry) int {
	s.mu.Lock()
	merged := make(map[string]core.Entry, len(s.entries)+len(incoming))
	for id, e := range s.entries {
		merged[id] = e
	}
	applied := 0
	for _, e := range incoming {
		if e.ID == "" {
			continue
		}
		merged[e.ID] = e
		applied++
	}
	s.entries = merged
	size := len(s.entries)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.emit(ctx, Change{Op: OpMerge, Size: size})
	return applied
}

// List returns a copy of every entry, in no particular order.
func (s *Store) List() []core.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Search returns the entries matching the query, newest first.
func (s *Store) Search(query string) []core.Entry {
	return core.Filter(s.List(), query)
}

// Totals recomputes the rolling sums against the reference instant.
func (s *Store) Totals(ref time.Time) core.Totals {
	return core.ComputeTotals(s.List(), ref)
}

// Len reports the collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) snapshotLocked() []core.Entry {
	out := make([]core.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out
}

// persistLocked re-serializes the whole collection through the port. A write
// failure keeps the in-memory state and is logged; persistence is a side
// effect of the mutation, not part of its contract.
func (s *Store) persistLocked(ctx context.Context) {
	payload, err := persist.Encode(s.snapshotLocked())
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode collection", "error", err)
		return
	}
	if err := s.blob.Save(ctx, payload); err != nil {
		slog.ErrorContext(ctx, "Failed to persist collection", "error", err, "entries", len(s.entries))
	}
}

func (s *Store) emit(ctx context.Context, c Change) {
	if s.notify != nil {
		s.notify(ctx, c)
	}
}
