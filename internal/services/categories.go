package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"budgetly/internal/core"
	"budgetly/internal/storage"
)

// CategoryService manages the two independent category sets, one per
// transaction kind. Each set is an ordered sequence of names with no
// duplicates; insertion order is preserved on read.
type CategoryService struct {
	store     storage.Store
	muExpense sync.Mutex
	muIncome  sync.Mutex
}

func NewCategoryService(store storage.Store) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) lock(kind core.TransactionKind) *sync.Mutex {
	if kind == core.IncomeKind {
		return &s.muIncome
	}
	return &s.muExpense
}

// Add appends name to the kind's set unless an exact match is already
// present. A duplicate add is a no-op and performs no store write.
func (s *CategoryService) Add(ctx context.Context, kind core.TransactionKind, name string) error {
	mu := s.lock(kind)
	mu.Lock()
	defer mu.Unlock()

	collection := kind.CategoryCollection()
	var names []string
	if err := s.store.Read(ctx, collection, &names); err != nil {
		return fmt.Errorf("add category: %w", err)
	}

	for _, existing := range names {
		if existing == name {
			return nil
		}
	}

	names = append(names, name)
	if err := s.store.Write(ctx, collection, names); err != nil {
		return fmt.Errorf("add category: %w", err)
	}

	slog.InfoContext(ctx, "Category added",
		"kind", string(kind),
		"name", name,
		"total", len(names))
	return nil
}

// List returns the kind's category names in insertion order.
func (s *CategoryService) List(ctx context.Context, kind core.TransactionKind) ([]string, error) {
	var names []string
	if err := s.store.Read(ctx, kind.CategoryCollection(), &names); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Delete removes name from the kind's set. Removing an absent name is
// a no-op.
func (s *CategoryService) Delete(ctx context.Context, kind core.TransactionKind, name string) error {
	mu := s.lock(kind)
	mu.Lock()
	defer mu.Unlock()

	collection := kind.CategoryCollection()
	var names []string
	if err := s.store.Read(ctx, collection, &names); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	kept := names[:0]
	for _, existing := range names {
		if existing != name {
			kept = append(kept, existing)
		}
	}

	if err := s.store.Write(ctx, collection, kept); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	slog.InfoContext(ctx, "Category deleted",
		"kind", string(kind),
		"name", name,
		"remaining", len(kept))
	return nil
}
