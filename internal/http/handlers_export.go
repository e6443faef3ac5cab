package http

import (
	"log/slog"
	"net/http"
	"time"

	"budgetly/internal/core"
)

// exportPayload is the full dataset as one downloadable document.
type exportPayload struct {
	Budget            core.Budget             `json:"budget"`
	ExpenseCategories []string                `json:"expenseCategories"`
	IncomeCategories  []string                `json:"incomeCategories"`
	Expenses          []core.Transaction      `json:"expenses"`
	Incomes           []core.Transaction      `json:"incomes"`
	BudgetGoals       []core.BudgetGoal       `json:"budgetGoals"`
	RecurringPayments []core.RecurringPayment `json:"recurringPayments"`
	ExportedAt        string                  `json:"exportedAt"`
}

// handleExport dumps every collection through the managers' list
// operations, so the export observes the same read semantics (defaults,
// empty sequences) as the individual endpoints.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	ctx := r.Context()
	payload := exportPayload{ExportedAt: time.Now().UTC().Format(time.RFC3339)}

	var err error
	if payload.Budget, err = s.budget.Get(ctx); err != nil {
		slog.ErrorContext(ctx, "Export budget read failed", "error", err)
		writeStorageError(w, err)
		return
	}
	if payload.ExpenseCategories, err = s.categories.List(ctx, core.ExpenseKind); err != nil {
		slog.ErrorContext(ctx, "Export category read failed", "error", err)
		writeStorageError(w, err)
		return
	}
	if payload.IncomeCategories, err = s.categories.List(ctx, core.IncomeKind); err != nil {
		slog.ErrorContext(ctx, "Export category read failed", "error", err)
		writeStorageError(w, err)
		return
	}
	if payload.Expenses, err = s.expenses.List(ctx); err != nil {
		slog.ErrorContext(ctx, "Export ledger read failed", "error", err)
		writeStorageError(w, err)
		return
	}
	if payload.Incomes, err = s.incomes.List(ctx); err != nil {
		slog.ErrorContext(ctx, "Export ledger read failed", "error", err)
		writeStorageError(w, err)
		return
	}
	if payload.BudgetGoals, err = s.goals.List(ctx); err != nil {
		slog.ErrorContext(ctx, "Export goal read failed", "error", err)
		writeStorageError(w, err)
		return
	}
	if payload.RecurringPayments, err = s.recurring.List(ctx); err != nil {
		slog.ErrorContext(ctx, "Export recurring read failed", "error", err)
		writeStorageError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="budgetly-export.json"`)
	writeJSON(w, http.StatusOK, payload)
}
