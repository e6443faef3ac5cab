package http

import (
	"log/slog"
	"net/http"
	"strings"

	"budgetly/internal/core"
	applog "budgetly/internal/log"
)

// handleCategories serves one kind's category set. POST of a name that
// is already present answers 200 with the unchanged list.
func (s *Server) handleCategories(kind core.TransactionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			names, err := s.categories.List(r.Context(), kind)
			if err != nil {
				slog.ErrorContext(r.Context(), "Category list failed", applog.FieldKind, string(kind), "error", err)
				writeStorageError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, names)

		case http.MethodPost:
			var body struct {
				Name string `json:"name"`
			}
			if err := decodeJSON(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}
			if strings.TrimSpace(body.Name) == "" {
				writeError(w, http.StatusBadRequest, "name is required")
				return
			}
			if err := s.categories.Add(r.Context(), kind, body.Name); err != nil {
				slog.ErrorContext(r.Context(), "Category add failed", applog.FieldKind, string(kind), "error", err)
				writeStorageError(w, err)
				return
			}
			names, err := s.categories.List(r.Context(), kind)
			if err != nil {
				writeStorageError(w, err)
				return
			}
			writeMessage(w, http.StatusOK, "category added", names)

		case http.MethodDelete:
			name := r.URL.Query().Get("name")
			if name == "" {
				writeError(w, http.StatusBadRequest, "name query parameter is required")
				return
			}
			if err := s.categories.Delete(r.Context(), kind, name); err != nil {
				slog.ErrorContext(r.Context(), "Category delete failed", applog.FieldKind, string(kind), "error", err)
				writeStorageError(w, err)
				return
			}
			writeMessage(w, http.StatusOK, "category deleted", nil)

		default:
			methodNotAllowed(w, "GET, POST, DELETE")
		}
	}
}
