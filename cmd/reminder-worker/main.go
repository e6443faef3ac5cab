package main

import (
	"context"
	"errors"
	"os"
	"time"

	"budgetly/internal/amqp"
	"budgetly/internal/cli"
	applog "budgetly/internal/log"
	"budgetly/internal/services"
	"budgetly/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(applog.ComponentWorker)

	logger.Info("Starting reminder-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	store := cli.OpenStore(logger, cfg)
	defer store.Close()

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP broker", applog.FieldError, err, "url", cfg.AMQPURL)
		os.Exit(1)
	}
	defer amqpClient.Close()

	payments := services.NewRecurringService(store)
	w := worker.NewReminderWorker(payments, amqpClient, cfg.ReminderHorizon, time.Now())

	ctx, done := cli.GracefulShutdown(logger, 10*time.Second, nil)

	logger.Info("Reminder worker running",
		"interval", cfg.ReminderInterval,
		"horizon", cfg.ReminderHorizon,
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue)

	if err := w.Run(ctx, cfg.ReminderInterval); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Reminder worker stopped with error", applog.FieldError, err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Reminder worker stopped gracefully")
}
