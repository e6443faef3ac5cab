// Package cli holds the initialization shared by cmd/budgetly and
// cmd/reminder-worker.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"budgetly/internal/config"
	applog "budgetly/internal/log"
	"budgetly/internal/storage"
)

// SetupLogger installs the process-wide structured logger and returns
// it scoped to the given component.
func SetupLogger(component string) *applog.Logger {
	logger := applog.New(slog.LevelInfo, component)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads an optional .env file for local development.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment and
// exits the process when it is unusable.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore builds the collection store named by DATA_BACKEND, exiting
// the process when the backend cannot be opened.
func OpenStore(logger *applog.Logger, cfg *config.Config) storage.Store {
	switch cfg.DataBackend {
	case config.BackendMemory:
		logger.Info("Using in-memory store, data will not survive restarts")
		return storage.NewMemoryStore()
	default:
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open SQLite store", applog.FieldError, err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		return store
	}
}

// GracefulShutdown installs SIGINT/SIGTERM handling. The returned
// context is cancelled on the first signal, after cleanup has run; the
// channel closes once shutdown finished.
func GracefulShutdown(logger *applog.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup()
		}

		cancel()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout reached")
		case <-time.After(2 * time.Second):
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until shutdown has finished.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
