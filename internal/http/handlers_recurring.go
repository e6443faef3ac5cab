package http

import (
	"log/slog"
	"net/http"

	"budgetly/internal/core"
	applog "budgetly/internal/log"
)

// handleRecurring serves recurring payment templates. PUT replaces
// every field except the id of the record named by ?id=; an absent id
// is a silent no-op.
func (s *Server) handleRecurring(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		payments, err := s.recurring.List(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Recurring list failed", "error", err)
			writeStorageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, payments)

	case http.MethodPost:
		var payment core.RecurringPayment
		if err := decodeJSON(r, &payment); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		created, err := s.recurring.Add(r.Context(), payment)
		if err != nil {
			slog.ErrorContext(r.Context(), "Recurring add failed", "error", err)
			writeStorageError(w, err)
			return
		}
		writeMessage(w, http.StatusCreated, "recurring payment created", created)

	case http.MethodPut:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "id query parameter is required")
			return
		}
		var payment core.RecurringPayment
		if err := decodeJSON(r, &payment); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := s.recurring.Update(r.Context(), id, payment); err != nil {
			slog.ErrorContext(r.Context(), "Recurring update failed", applog.FieldRecordID, id, "error", err)
			writeStorageError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "recurring payment updated", nil)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "id query parameter is required")
			return
		}
		if err := s.recurring.Delete(r.Context(), id); err != nil {
			slog.ErrorContext(r.Context(), "Recurring delete failed", applog.FieldRecordID, id, "error", err)
			writeStorageError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "recurring payment deleted", nil)

	default:
		methodNotAllowed(w, "GET, POST, PUT, DELETE")
	}
}
