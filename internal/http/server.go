package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"budgetly/internal/cache"
	"budgetly/internal/core"
	"budgetly/internal/services"
	"budgetly/internal/storage"
)

const summaryCacheTTL = 30 * time.Second

type Server struct {
	http.Server
	store storage.Store

	budget     *services.BudgetService
	categories *services.CategoryService
	expenses   *services.LedgerService
	incomes    *services.LedgerService
	goals      *services.GoalService
	recurring  *services.RecurringService

	rateLimiter *rateLimiter

	// Cached dashboard summary, dropped whenever a ledger changes.
	summaryCache *cache.LRUCache[services.Summary]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer wires the collection managers onto the given store and
// configures routes, returning a ready-to-run http.Server.
func NewServer(addr string, store storage.Store) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:            store,
		budget:           services.NewBudgetService(store),
		categories:       services.NewCategoryService(store),
		expenses:         services.NewLedgerService(store, core.ExpenseKind),
		incomes:          services.NewLedgerService(store, core.IncomeKind),
		goals:            services.NewGoalService(store),
		recurring:        services.NewRecurringService(store),
		rateLimiter:      newRateLimiter(),
		summaryCache:     cache.NewLRUCache[services.Summary](10, summaryCacheTTL),
		stopCacheCleanup: make(chan struct{}),
	}

	go s.startCacheCleanup()

	mux.HandleFunc("/", s.secured(s.handleHome))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/api/budget", s.secured(s.handleBudget))
	mux.HandleFunc("/api/categories/expense", s.secured(s.handleCategories(core.ExpenseKind)))
	mux.HandleFunc("/api/categories/income", s.secured(s.handleCategories(core.IncomeKind)))
	mux.HandleFunc("/api/expenses", s.secured(s.handleLedger(s.expenses)))
	mux.HandleFunc("/api/incomes", s.secured(s.handleLedger(s.incomes)))
	mux.HandleFunc("/api/goals", s.secured(s.handleGoals))
	mux.HandleFunc("/api/recurring", s.secured(s.handleRecurring))
	mux.HandleFunc("/api/summary", s.secured(s.handleSummary))
	mux.HandleFunc("/api/export", s.secured(s.handleExport))

	return s
}

// startCacheCleanup periodically evicts expired summary entries.
func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cleaned := s.summaryCache.CleanExpired(); cleaned > 0 {
				slog.Debug("Cache cleanup completed", "entries_removed", cleaned)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown stops the background cleanup goroutines and then shuts the
// HTTP server down gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.stopCacheCleanup != nil {
			close(s.stopCacheCleanup)
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Budgetly backend is ready"))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady answers ready only when the store answers a read.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var probe []core.Budget
	if err := s.store.Read(ctx, core.CollectionBalances, &probe); err != nil {
		slog.ErrorContext(r.Context(), "Readiness probe failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("store unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
