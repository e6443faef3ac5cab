package services

import "budgetly/internal/core"

// Summary aggregates the two ledgers for the dashboard endpoint. The
// ledgers themselves stay aggregation-free; this is plain summing over
// the listed sequences.
type Summary struct {
	TotalExpenses      float64            `json:"totalExpenses"`
	TotalIncomes       float64            `json:"totalIncomes"`
	Balance            float64            `json:"balance"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
}

// BuildSummary computes totals from the listed transactions.
func BuildSummary(expenses, incomes []core.Transaction) Summary {
	summary := Summary{ExpensesByCategory: make(map[string]float64)}

	for _, e := range expenses {
		summary.TotalExpenses += e.Value
		summary.ExpensesByCategory[e.Category] += e.Value
	}
	for _, i := range incomes {
		summary.TotalIncomes += i.Value
	}
	summary.Balance = summary.TotalIncomes - summary.TotalExpenses

	return summary
}
