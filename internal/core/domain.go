package core

import "github.com/google/uuid"

// Collection names used by the store. Each manager owns exactly one
// collection (the category registry owns two).
const (
	CollectionExpenses          = "expenses"
	CollectionIncomes           = "incomes"
	CollectionExpenseCategories = "expense_categories"
	CollectionIncomeCategories  = "income_categories"
	CollectionBudgetGoals       = "budget_goals"
	CollectionRecurringPayments = "recurring_payments"
	CollectionBalances          = "balances"
)

// DefaultCurrency is reported when no budget record has been stored yet.
const DefaultCurrency = "IRR"

type (
	// TransactionKind selects one of the two ledgers.
	TransactionKind string

	// Transaction is a single ledger entry. The date is an ISO-8601
	// calendar date kept verbatim; it is never parsed at this layer.
	Transaction struct {
		ID       string  `json:"id"`
		Category string  `json:"category"`
		Value    float64 `json:"value"`
		Date     string  `json:"date"`
	}

	// BudgetGoal is a spending or earning threshold for a period.
	// Type and period are free-form strings by design.
	BudgetGoal struct {
		ID     string  `json:"id"`
		Type   string  `json:"type"`
		Period string  `json:"period"`
		Amount float64 `json:"amount"`
	}

	// Reminder is an offset before a recurring payment's due date.
	Reminder struct {
		Days  int `json:"days"`
		Hours int `json:"hours"`
	}

	// RecurringPayment is a template for a periodically recurring
	// transaction plus its reminder offsets. The managers store it as
	// data only; scheduling happens in the reminder worker.
	RecurringPayment struct {
		ID          string     `json:"id"`
		Type        string     `json:"type"`
		Category    string     `json:"category"`
		Value       float64    `json:"value"`
		StartDate   string     `json:"startDate"`
		Frequency   string     `json:"frequency"`
		Description string     `json:"description"`
		Reminders   []Reminder `json:"reminders"`
	}

	// Budget is the single overall budget record.
	Budget struct {
		Budget   float64 `json:"budget"`
		Currency string  `json:"currency"`
	}
)

const (
	ExpenseKind TransactionKind = "expense"
	IncomeKind  TransactionKind = "income"
)

// Collection returns the ledger collection backing the kind.
func (k TransactionKind) Collection() string {
	if k == IncomeKind {
		return CollectionIncomes
	}
	return CollectionExpenses
}

// CategoryCollection returns the category set paired with the kind.
func (k TransactionKind) CategoryCollection() string {
	if k == IncomeKind {
		return CollectionIncomeCategories
	}
	return CollectionExpenseCategories
}

// DefaultBudget is what GET /api/budget reports before any POST.
func DefaultBudget() Budget {
	return Budget{Budget: 0, Currency: DefaultCurrency}
}

// NewID returns a fresh globally-unique record identifier in canonical
// RFC 4122 form.
func NewID() string {
	return uuid.NewString()
}
