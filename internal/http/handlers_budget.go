package http

import (
	"log/slog"
	"net/http"

	"budgetly/internal/core"
)

// handleBudget serves the single budget record: GET reports it (with
// the zero-IRR default before the first write), POST replaces it.
func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		budget, err := s.budget.Get(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Budget read failed", "error", err)
			writeStorageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, budget)

	case http.MethodPost:
		var budget core.Budget
		if err := decodeJSON(r, &budget); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := s.budget.Set(r.Context(), budget); err != nil {
			slog.ErrorContext(r.Context(), "Budget write failed", "error", err)
			writeStorageError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "budget updated", budget)

	default:
		methodNotAllowed(w, "GET, POST")
	}
}
