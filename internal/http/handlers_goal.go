package http

import (
	"log/slog"
	"net/http"

	applog "budgetly/internal/log"
)

// handleGoals serves the budget goals collection. PUT changes only the
// amount of the goal named by ?id=; DELETE removes it. Both are silent
// no-ops when the id is absent.
func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		goals, err := s.goals.List(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Goal list failed", "error", err)
			writeStorageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, goals)

	case http.MethodPost:
		var body struct {
			Type   string  `json:"type"`
			Period string  `json:"period"`
			Amount float64 `json:"amount"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		goal, err := s.goals.Add(r.Context(), body.Type, body.Period, body.Amount)
		if err != nil {
			slog.ErrorContext(r.Context(), "Goal add failed", "error", err)
			writeStorageError(w, err)
			return
		}
		writeMessage(w, http.StatusCreated, "goal created", goal)

	case http.MethodPut:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "id query parameter is required")
			return
		}
		var body struct {
			Amount float64 `json:"amount"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := s.goals.UpdateAmount(r.Context(), id, body.Amount); err != nil {
			slog.ErrorContext(r.Context(), "Goal update failed", applog.FieldRecordID, id, "error", err)
			writeStorageError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "goal updated", nil)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "id query parameter is required")
			return
		}
		if err := s.goals.Delete(r.Context(), id); err != nil {
			slog.ErrorContext(r.Context(), "Goal delete failed", applog.FieldRecordID, id, "error", err)
			writeStorageError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "goal deleted", nil)

	default:
		methodNotAllowed(w, "GET, POST, PUT, DELETE")
	}
}
