package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"budgetly/internal/core"
	"budgetly/internal/storage"
)

// BudgetService manages the single overall budget record, stored as a
// one-element collection that is fully replaced on each set.
type BudgetService struct {
	store storage.Store
	mu    sync.Mutex
}

func NewBudgetService(store storage.Store) *BudgetService {
	return &BudgetService{store: store}
}

// Get returns the stored budget, or the zero-amount default with the
// default currency when nothing has been stored yet.
func (s *BudgetService) Get(ctx context.Context) (core.Budget, error) {
	var records []core.Budget
	if err := s.store.Read(ctx, core.CollectionBalances, &records); err != nil {
		return core.Budget{}, fmt.Errorf("get budget: %w", err)
	}
	if len(records) == 0 {
		return core.DefaultBudget(), nil
	}
	return records[0], nil
}

// Set replaces the stored budget record.
func (s *BudgetService) Set(ctx context.Context, budget core.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Write(ctx, core.CollectionBalances, []core.Budget{budget}); err != nil {
		return fmt.Errorf("set budget: %w", err)
	}

	slog.InfoContext(ctx, "Budget saved",
		"budget", budget.Budget,
		"currency", budget.Currency)
	return nil
}
