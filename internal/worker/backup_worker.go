// Package worker contains the backup worker: it listens for collection
// change events and refreshes an on-disk snapshot of the collection.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"runlog/internal/amqp"
	"runlog/internal/persist"
	"runlog/internal/transfer"
)

// BackupWorker writes a dated export file whenever the collection changes.
type BackupWorker struct {
	blob persist.Store
	dir  string
	now  func() time.Time
}

func NewBackupWorker(blob persist.Store, dir string) *BackupWorker {
	return &BackupWorker{blob: blob, dir: dir, now: time.Now}
}

// HandleChange reloads the authoritative blob and rewrites today's snapshot.
// The message itself only triggers the refresh; the persisted state is the
// source of truth.
func (w *BackupWorker) HandleChange(ctx context.Context, msg *amqp.ChangeMessage) error {
	slog.InfoContext(ctx, "Processing change message", "op", msg.Op, "size", msg.Size)

	payload, err := w.blob.Load(ctx)
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	entries := persist.Decode(payload)

	out, err := transfer.Export(entries)
	if err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}

	path := filepath.Join(w.dir, transfer.ExportFileName(w.now()))
	if err := writeFileAtomic(path, out); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	slog.InfoContext(ctx, "Snapshot written", "path", path, "entries", len(entries))
	return nil
}

// writeFileAtomic writes via a temp file and rename so a crash never leaves
// a truncated snapshot behind.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
