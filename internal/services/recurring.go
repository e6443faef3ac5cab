package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"budgetly/internal/core"
	"budgetly/internal/storage"
)

// RecurringService manages recurring payment templates. All fields
// except the id are replaced as a whole on update.
type RecurringService struct {
	store storage.Store
	mu    sync.Mutex
}

func NewRecurringService(store storage.Store) *RecurringService {
	return &RecurringService{store: store}
}

// Add creates a recurring payment with a fresh id and returns the
// stored record. Any id supplied on the input is ignored.
func (s *RecurringService) Add(ctx context.Context, payment core.RecurringPayment) (core.RecurringPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payments []core.RecurringPayment
	if err := s.store.Read(ctx, core.CollectionRecurringPayments, &payments); err != nil {
		return core.RecurringPayment{}, fmt.Errorf("add recurring payment: %w", err)
	}

	payment.ID = core.NewID()
	if payment.Reminders == nil {
		payment.Reminders = []core.Reminder{}
	}
	payments = append(payments, payment)

	if err := s.store.Write(ctx, core.CollectionRecurringPayments, payments); err != nil {
		return core.RecurringPayment{}, fmt.Errorf("add recurring payment: %w", err)
	}

	slog.InfoContext(ctx, "Recurring payment added",
		"id", payment.ID,
		"type", payment.Type,
		"category", payment.Category,
		"frequency", payment.Frequency,
		"reminders", len(payment.Reminders))
	return payment, nil
}

// List returns all recurring payments in insertion order.
func (s *RecurringService) List(ctx context.Context) ([]core.RecurringPayment, error) {
	var payments []core.RecurringPayment
	if err := s.store.Read(ctx, core.CollectionRecurringPayments, &payments); err != nil {
		return nil, fmt.Errorf("list recurring payments: %w", err)
	}
	if payments == nil {
		payments = []core.RecurringPayment{}
	}
	return payments, nil
}

// Update replaces every field except the id of the first payment
// matching id, keeping its position. An absent id leaves the
// collection unchanged and is not an error.
func (s *RecurringService) Update(ctx context.Context, id string, payment core.RecurringPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payments []core.RecurringPayment
	if err := s.store.Read(ctx, core.CollectionRecurringPayments, &payments); err != nil {
		return fmt.Errorf("update recurring payment: %w", err)
	}

	found := false
	for i := range payments {
		if payments[i].ID == id {
			payment.ID = id
			if payment.Reminders == nil {
				payment.Reminders = []core.Reminder{}
			}
			payments[i] = payment
			found = true
			break
		}
	}

	if err := s.store.Write(ctx, core.CollectionRecurringPayments, payments); err != nil {
		return fmt.Errorf("update recurring payment: %w", err)
	}

	if !found {
		slog.WarnContext(ctx, "Recurring payment update target not found", "id", id)
		return nil
	}
	slog.InfoContext(ctx, "Recurring payment updated", "id", id)
	return nil
}

// Delete removes the first payment matching id. Deleting an absent id
// is a no-op.
func (s *RecurringService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payments []core.RecurringPayment
	if err := s.store.Read(ctx, core.CollectionRecurringPayments, &payments); err != nil {
		return fmt.Errorf("delete recurring payment: %w", err)
	}

	kept := payments[:0]
	removed := false
	for _, payment := range payments {
		if !removed && payment.ID == id {
			removed = true
			continue
		}
		kept = append(kept, payment)
	}

	if err := s.store.Write(ctx, core.CollectionRecurringPayments, kept); err != nil {
		return fmt.Errorf("delete recurring payment: %w", err)
	}

	if removed {
		slog.InfoContext(ctx, "Recurring payment deleted", "id", id)
	}
	return nil
}
