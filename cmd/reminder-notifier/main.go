package main

import (
	"context"
	"errors"
	"os"
	"time"

	"budgetly/internal/amqp"
	"budgetly/internal/cli"
	applog "budgetly/internal/log"
	"budgetly/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(applog.ComponentWorker)

	logger.Info("Starting reminder-notifier")

	cfg := cli.LoadAndValidateConfig(logger)

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP broker", applog.FieldError, err, "url", cfg.AMQPURL)
		os.Exit(1)
	}
	defer amqpClient.Close()

	notifier := worker.NewReminderNotifier()

	ctx, done := cli.GracefulShutdown(logger, 10*time.Second, nil)

	logger.Info("Reminder notifier consuming", "queue", cfg.AMQPQueue)
	if err := amqpClient.ConsumeReminderDue(ctx, notifier.HandleReminderDue); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Reminder notifier stopped with error", applog.FieldError, err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Reminder notifier stopped gracefully")
}
