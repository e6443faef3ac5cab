package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"budgetly/internal/core"
)

// runStoreContract exercises the behavior every Store backend must
// share: empty read before first write, full replacement on write, and
// serialization failures surfacing as ErrSerialization.
func runStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	var initial []core.Transaction
	if err := s.Read(ctx, core.CollectionExpenses, &initial); err != nil {
		t.Fatalf("read of unwritten collection: %v", err)
	}
	if len(initial) != 0 {
		t.Fatalf("unwritten collection not empty: %v", initial)
	}

	records := []core.Transaction{
		{ID: "a", Category: "Food", Value: 50, Date: "2024-01-01"},
		{ID: "b", Category: "Transportation", Value: 25, Date: "2024-01-02"},
	}
	if err := s.Write(ctx, core.CollectionExpenses, records); err != nil {
		t.Fatalf("write: %v", err)
	}

	var got []core.Transaction
	if err := s.Read(ctx, core.CollectionExpenses, &got); err != nil {
		t.Fatalf("read after write: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("read = %v, want the two written records in order", got)
	}

	// A write replaces the whole collection, it does not append.
	if err := s.Write(ctx, core.CollectionExpenses, records[:1]); err != nil {
		t.Fatalf("replacing write: %v", err)
	}
	got = nil
	if err := s.Read(ctx, core.CollectionExpenses, &got); err != nil {
		t.Fatalf("read after replace: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("read after replace = %v, want just record a", got)
	}

	// Collections are independent.
	var incomes []core.Transaction
	if err := s.Read(ctx, core.CollectionIncomes, &incomes); err != nil {
		t.Fatalf("read sibling collection: %v", err)
	}
	if len(incomes) != 0 {
		t.Fatalf("sibling collection leaked records: %v", incomes)
	}

	// Non-serializable values must fail without touching the stored data.
	err := s.Write(ctx, core.CollectionExpenses, []any{func() {}})
	if !errors.Is(err, ErrSerialization) {
		t.Fatalf("write of non-serializable value: err = %v, want ErrSerialization", err)
	}
	got = nil
	if err := s.Read(ctx, core.CollectionExpenses, &got); err != nil {
		t.Fatalf("read after failed write: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("failed write changed stored data: %v", got)
	}
}

func TestMemoryStoreContract(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	runStoreContract(t, s)
}

func TestSQLiteStoreContract(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "budgetly.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	defer s.Close()
	runStoreContract(t, s)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "budgetly.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	if err := s.Write(ctx, core.CollectionBudgetGoals, []core.BudgetGoal{
		{ID: "g1", Type: "expense", Period: "monthly", Amount: 1000},
	}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen sqlite store: %v", err)
	}
	defer reopened.Close()

	var goals []core.BudgetGoal
	if err := reopened.Read(ctx, core.CollectionBudgetGoals, &goals); err != nil {
		t.Fatalf("read after reopen: %v", err)
	}
	if len(goals) != 1 || goals[0].Amount != 1000 {
		t.Fatalf("goals after reopen = %v, want the stored goal", goals)
	}
}
