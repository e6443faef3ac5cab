package http

import (
	"log/slog"
	"net/http"

	"budgetly/internal/services"
)

const summaryCacheKey = "summary"

// handleSummary serves dashboard totals computed over both ledgers,
// cached briefly because it reads two collections per request.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	if summary, found := s.summaryCache.Get(summaryCacheKey); found {
		slog.DebugContext(r.Context(), "Summary cache hit")
		writeJSON(w, http.StatusOK, summary)
		return
	}

	expenses, err := s.expenses.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary expense read failed", "error", err)
		writeStorageError(w, err)
		return
	}
	incomes, err := s.incomes.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary income read failed", "error", err)
		writeStorageError(w, err)
		return
	}

	summary := services.BuildSummary(expenses, incomes)
	s.summaryCache.Set(summaryCacheKey, summary)
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) invalidateSummary() {
	s.summaryCache.Delete(summaryCacheKey)
}
