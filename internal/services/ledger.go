package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"budgetly/internal/core"
	"budgetly/internal/storage"
)

// LedgerService is the append-only transaction ledger for one kind.
// Construct one instance per kind; each owns its collection exclusively.
type LedgerService struct {
	store storage.Store
	kind  core.TransactionKind
	mu    sync.Mutex
}

func NewLedgerService(store storage.Store, kind core.TransactionKind) *LedgerService {
	return &LedgerService{store: store, kind: kind}
}

// Kind returns the ledger's transaction kind.
func (s *LedgerService) Kind() core.TransactionKind {
	return s.kind
}

// Add appends a transaction with a fresh id and returns the stored
// record. The value and date are stored verbatim; the ledger enforces
// no referential integrity against the category registry.
func (s *LedgerService) Add(ctx context.Context, category string, value float64, date string) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.kind.Collection()
	var records []core.Transaction
	if err := s.store.Read(ctx, collection, &records); err != nil {
		return core.Transaction{}, fmt.Errorf("add %s: %w", s.kind, err)
	}

	record := core.Transaction{
		ID:       core.NewID(),
		Category: category,
		Value:    value,
		Date:     date,
	}
	records = append(records, record)

	if err := s.store.Write(ctx, collection, records); err != nil {
		return core.Transaction{}, fmt.Errorf("add %s: %w", s.kind, err)
	}

	slog.InfoContext(ctx, "Transaction recorded",
		"kind", string(s.kind),
		"id", record.ID,
		"category", record.Category,
		"value", record.Value,
		"date", record.Date)
	return record, nil
}

// List returns the ledger's transactions in the order they were added.
// No sorting by date is performed.
func (s *LedgerService) List(ctx context.Context) ([]core.Transaction, error) {
	var records []core.Transaction
	if err := s.store.Read(ctx, s.kind.Collection(), &records); err != nil {
		return nil, fmt.Errorf("list %ss: %w", s.kind, err)
	}
	if records == nil {
		records = []core.Transaction{}
	}
	return records, nil
}
