package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/store"
)

// handleListReports lists archived reports, newest first. Supports
// ?circuit=<hash> to filter by circuit and ?limit=<n> to cap results.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	opts := store.ListOptions{
		CircuitHash: r.URL.Query().Get("circuit"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput,
				"limit must be a non-negative integer, got %q", raw))
			return
		}
		opts.Limit = limit
	}

	reports, err := s.store.List(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "list reports"))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(reports),
		"reports": reports,
	})
}

// handleGetReport returns one archived report by ID.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rep, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "load report %s", id))
		return
	}
	if rep == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeReportNotFound, "report %q not found", id))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"report":  rep,
	})
}

// handleDeleteReport removes an archived report. Deleting an absent report
// succeeds, matching the store contract.
func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "delete report %s", id))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
