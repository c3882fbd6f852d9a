// Package http exposes the collection over a small JSON API.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"runlog/internal/collection"
)

// Server holds the handler dependencies.
type Server struct {
	store *collection.Store
	now   func() time.Time
}

func NewServer(store *collection.Store) *Server {
	return &Server{store: store, now: time.Now}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/entries", s.handleListEntries)
	mux.HandleFunc("POST /api/entries", s.handleSubmitEntry)
	mux.HandleFunc("DELETE /api/entries/{id}", s.handleRemoveEntry)
	mux.HandleFunc("POST /api/entries/clear", s.handleClear)
	mux.HandleFunc("GET /api/totals", s.handleTotals)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("POST /api/import", s.handleImport)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
