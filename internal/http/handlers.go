package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"runlog/internal/core"
	"runlog/internal/transfer"
)

const maxImportBytes = 10 << 20 // bounded-size import parse

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"entries":   s.store.Len(),
	})
}

// handleListEntries returns all entries, optionally filtered by ?q=,
// newest first.
func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	entries := s.store.Search(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleSubmitEntry(w http.ResponseWriter, r *http.Request) {
	var draft core.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := s.store.Add(r.Context(), draft)
	if err != nil {
		slog.InfoContext(r.Context(), "Entry rejected",
			"date", draft.Date, "quantity", draft.Quantity, "error", err)
		writeError(w, http.StatusUnprocessableEntity, rejectionMessage(err))
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	// Removing an unknown id is a no-op, so this always succeeds.
	s.store.Remove(r.Context(), r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.store.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Totals(s.now()))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	out, err := transfer.Export(s.store.List())
	if err != nil {
		slog.ErrorContext(r.Context(), "Export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", transfer.ExportFileName(s.now())))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read import file")
		return
	}

	entries, err := transfer.ParseImport(body)
	if err != nil {
		// The collection is untouched on any import failure.
		slog.InfoContext(r.Context(), "Import rejected", "error", err)
		writeError(w, http.StatusBadRequest, "import failed: file is not an entry array")
		return
	}

	applied := s.store.Merge(r.Context(), entries)
	writeJSON(w, http.StatusOK, map[string]int{
		"imported": applied,
		"total":    s.store.Len(),
	})
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidQuantity):
		return "quantity must be a positive number"
	case errors.Is(err, core.ErrInvalidDate):
		return "date must be a valid YYYY-MM-DD day"
	case errors.Is(err, core.ErrFutureDate):
		return "date cannot be in the future"
	default:
		return "entry rejected"
	}
}
