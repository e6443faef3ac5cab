package services

import (
	"context"
	"testing"

	"budgetly/internal/storage"
)

func TestGoalAddListRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewGoalService(storage.NewMemoryStore())

	goal, err := svc.Add(ctx, "expense", "monthly", 1000.0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if goal.ID == "" {
		t.Fatal("added goal missing id")
	}
	if goal.Type != "expense" || goal.Period != "monthly" || goal.Amount != 1000.0 {
		t.Errorf("returned goal = %+v, want input fields plus id", goal)
	}

	goals, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 1 || goals[0] != goal {
		t.Errorf("list = %v, want the one added goal", goals)
	}
}

func TestGoalUpdateAmountPreservesIdentity(t *testing.T) {
	ctx := context.Background()
	svc := NewGoalService(storage.NewMemoryStore())

	first, _ := svc.Add(ctx, "expense", "monthly", 1000.0)
	second, _ := svc.Add(ctx, "income", "weekly", 200.0)

	if err := svc.UpdateAmount(ctx, first.ID, 1200.0); err != nil {
		t.Fatalf("update: %v", err)
	}

	goals, _ := svc.List(ctx)
	if len(goals) != 2 {
		t.Fatalf("list length = %d, want 2", len(goals))
	}
	if goals[0].ID != first.ID || goals[0].Type != "expense" || goals[0].Period != "monthly" {
		t.Errorf("updated goal lost identity: %+v", goals[0])
	}
	if goals[0].Amount != 1200.0 {
		t.Errorf("updated amount = %v, want 1200.0", goals[0].Amount)
	}
	if goals[1] != second {
		t.Errorf("sibling goal changed: %+v, want %+v", goals[1], second)
	}
}

func TestGoalUpdateAbsentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := NewGoalService(storage.NewMemoryStore())

	goal, _ := svc.Add(ctx, "expense", "monthly", 1000.0)

	if err := svc.UpdateAmount(ctx, "nonexistent", 500.0); err != nil {
		t.Fatalf("update absent id: %v", err)
	}

	goals, _ := svc.List(ctx)
	if len(goals) != 1 || goals[0] != goal {
		t.Errorf("collection changed by absent update: %v", goals)
	}
}

func TestGoalDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewGoalService(storage.NewMemoryStore())

	first, _ := svc.Add(ctx, "expense", "monthly", 1000.0)
	second, _ := svc.Add(ctx, "income", "weekly", 200.0)
	third, _ := svc.Add(ctx, "expense", "yearly", 12000.0)

	if err := svc.Delete(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	goals, _ := svc.List(ctx)
	if len(goals) != 2 {
		t.Fatalf("list length after delete = %d, want 2", len(goals))
	}
	if goals[0] != first || goals[1] != third {
		t.Errorf("surviving goals = %v, want first and third untouched", goals)
	}

	// Absent id: length unchanged.
	if err := svc.Delete(ctx, "nonexistent"); err != nil {
		t.Fatalf("delete absent id: %v", err)
	}
	goals, _ = svc.List(ctx)
	if len(goals) != 2 {
		t.Errorf("list length after absent delete = %d, want 2", len(goals))
	}
}
