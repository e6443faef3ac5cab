package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"budgetly/internal/core"
	"budgetly/internal/storage"
)

// GoalService manages budget goal records. Only the amount of a goal
// is mutable; id, type and period are fixed at creation.
type GoalService struct {
	store storage.Store
	mu    sync.Mutex
}

func NewGoalService(store storage.Store) *GoalService {
	return &GoalService{store: store}
}

// Add creates a goal with a fresh id and returns the stored record.
func (s *GoalService) Add(ctx context.Context, goalType, period string, amount float64) (core.BudgetGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var goals []core.BudgetGoal
	if err := s.store.Read(ctx, core.CollectionBudgetGoals, &goals); err != nil {
		return core.BudgetGoal{}, fmt.Errorf("add goal: %w", err)
	}

	goal := core.BudgetGoal{
		ID:     core.NewID(),
		Type:   goalType,
		Period: period,
		Amount: amount,
	}
	goals = append(goals, goal)

	if err := s.store.Write(ctx, core.CollectionBudgetGoals, goals); err != nil {
		return core.BudgetGoal{}, fmt.Errorf("add goal: %w", err)
	}

	slog.InfoContext(ctx, "Budget goal added",
		"id", goal.ID,
		"type", goal.Type,
		"period", goal.Period,
		"amount", goal.Amount)
	return goal, nil
}

// List returns all goals in insertion order.
func (s *GoalService) List(ctx context.Context) ([]core.BudgetGoal, error) {
	var goals []core.BudgetGoal
	if err := s.store.Read(ctx, core.CollectionBudgetGoals, &goals); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	if goals == nil {
		goals = []core.BudgetGoal{}
	}
	return goals, nil
}

// UpdateAmount replaces the amount of the first goal matching id,
// keeping its position and every other field. An absent id leaves the
// collection unchanged and is not an error.
func (s *GoalService) UpdateAmount(ctx context.Context, id string, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var goals []core.BudgetGoal
	if err := s.store.Read(ctx, core.CollectionBudgetGoals, &goals); err != nil {
		return fmt.Errorf("update goal: %w", err)
	}

	found := false
	for i := range goals {
		if goals[i].ID == id {
			goals[i].Amount = amount
			found = true
			break
		}
	}

	if err := s.store.Write(ctx, core.CollectionBudgetGoals, goals); err != nil {
		return fmt.Errorf("update goal: %w", err)
	}

	if !found {
		slog.WarnContext(ctx, "Goal update target not found", "id", id)
		return nil
	}
	slog.InfoContext(ctx, "Budget goal amount updated", "id", id, "amount", amount)
	return nil
}

// Delete removes the first goal matching id. Deleting an absent id is
// a no-op.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var goals []core.BudgetGoal
	if err := s.store.Read(ctx, core.CollectionBudgetGoals, &goals); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	kept := goals[:0]
	removed := false
	for _, goal := range goals {
		if !removed && goal.ID == id {
			removed = true
			continue
		}
		kept = append(kept, goal)
	}

	if err := s.store.Write(ctx, core.CollectionBudgetGoals, kept); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	if removed {
		slog.InfoContext(ctx, "Budget goal deleted", "id", id)
	}
	return nil
}
