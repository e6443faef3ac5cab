package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budgetly/internal/amqp"
	"budgetly/internal/services"
)

// ReminderPublisher is the outbound side of the reminder pipeline.
type ReminderPublisher interface {
	PublishReminderDue(ctx context.Context, msg *amqp.ReminderDueMessage) error
}

// ReminderWorker periodically scans recurring payments and publishes a
// message for every reminder whose fire time falls inside the next
// sweep window. The cursor makes windows contiguous, so each reminder
// is published exactly once.
type ReminderWorker struct {
	payments  *services.RecurringService
	publisher ReminderPublisher
	horizon   time.Duration
	cursor    time.Time
}

func NewReminderWorker(payments *services.RecurringService, publisher ReminderPublisher, horizon time.Duration, start time.Time) *ReminderWorker {
	return &ReminderWorker{
		payments:  payments,
		publisher: publisher,
		horizon:   horizon,
		cursor:    start,
	}
}

// Sweep publishes every reminder firing in [cursor, now+horizon) and
// advances the cursor. A payment with a bad start date is skipped, not
// fatal; publish failures leave the cursor untouched so the next sweep
// retries the window.
func (w *ReminderWorker) Sweep(ctx context.Context, now time.Time) (int, error) {
	from := w.cursor
	to := now.Add(w.horizon)
	if !to.After(from) {
		return 0, nil
	}

	payments, err := w.payments.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list recurring payments: %w", err)
	}

	published := 0
	for _, payment := range payments {
		instances, err := services.UpcomingReminders(payment, from, to)
		if err != nil {
			slog.WarnContext(ctx, "Skipping payment with unusable start date",
				"id", payment.ID,
				"start_date", payment.StartDate,
				"error", err)
			continue
		}

		for _, inst := range instances {
			msg := &amqp.ReminderDueMessage{
				PaymentID:   inst.Payment.ID,
				Type:        inst.Payment.Type,
				Category:    inst.Payment.Category,
				Value:       inst.Payment.Value,
				Description: inst.Payment.Description,
				DueDate:     inst.Due.Format(services.DueDateLayout),
				OffsetDays:  inst.Offset.Days,
				OffsetHours: inst.Offset.Hours,
				FireAt:      inst.At,
				Timestamp:   now,
			}
			if err := w.publisher.PublishReminderDue(ctx, msg); err != nil {
				return published, fmt.Errorf("publish reminder for payment %s: %w", inst.Payment.ID, err)
			}
			published++
		}
	}

	w.cursor = to
	slog.InfoContext(ctx, "Reminder sweep complete",
		"published", published,
		"window_from", from,
		"window_to", to)
	return published, nil
}

// Run sweeps immediately and then on every interval tick until ctx is
// cancelled.
func (w *ReminderWorker) Run(ctx context.Context, interval time.Duration) error {
	if _, err := w.Sweep(ctx, time.Now()); err != nil {
		slog.ErrorContext(ctx, "Initial reminder sweep failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if _, err := w.Sweep(ctx, now); err != nil {
				slog.ErrorContext(ctx, "Reminder sweep failed", "error", err)
			}
		}
	}
}
