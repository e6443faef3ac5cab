package http

import (
	"log/slog"
	"net/http"

	applog "budgetly/internal/log"
	"budgetly/internal/services"
)

// handleLedger serves one ledger. POST appends and answers 201 with the
// created record; the summary cache is dropped because totals changed.
func (s *Server) handleLedger(ledger *services.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			records, err := ledger.List(r.Context())
			if err != nil {
				slog.ErrorContext(r.Context(), "Ledger list failed",
					applog.FieldKind, string(ledger.Kind()), "error", err)
				writeStorageError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, records)

		case http.MethodPost:
			var body struct {
				Category string  `json:"category"`
				Value    float64 `json:"value"`
				Date     string  `json:"date"`
			}
			if err := decodeJSON(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}
			record, err := ledger.Add(r.Context(), body.Category, body.Value, body.Date)
			if err != nil {
				slog.ErrorContext(r.Context(), "Ledger append failed",
					applog.FieldKind, string(ledger.Kind()), "error", err)
				writeStorageError(w, err)
				return
			}
			s.invalidateSummary()
			writeMessage(w, http.StatusCreated, "transaction recorded", record)

		default:
			methodNotAllowed(w, "GET, POST")
		}
	}
}
