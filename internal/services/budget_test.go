package services

import (
	"context"
	"testing"

	"budgetly/internal/core"
	"budgetly/internal/storage"
)

func TestBudgetDefaultsBeforeFirstSet(t *testing.T) {
	svc := NewBudgetService(storage.NewMemoryStore())

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Budget != 0 || got.Currency != "IRR" {
		t.Errorf("default budget = %+v, want {0 IRR}", got)
	}
}

func TestBudgetSetReplacesRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewBudgetService(storage.NewMemoryStore())

	if err := svc.Set(ctx, core.Budget{Budget: 5000, Currency: "USD"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Budget != 5000 || got.Currency != "USD" {
		t.Errorf("budget = %+v, want {5000 USD}", got)
	}

	// A second set overrides, it does not accumulate records.
	if err := svc.Set(ctx, core.Budget{Budget: 10000, Currency: "EUR"}); err != nil {
		t.Fatalf("second set: %v", err)
	}
	got, _ = svc.Get(ctx)
	if got.Budget != 10000 || got.Currency != "EUR" {
		t.Errorf("budget after override = %+v, want {10000 EUR}", got)
	}
}
