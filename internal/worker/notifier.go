package worker

import (
	"fmt"
	"log/slog"

	"budgetly/internal/amqp"
)

// ReminderNotifier turns consumed reminder messages into user-facing
// notices. Delivery is a structured log line; richer channels (mail,
// push) sit behind the same handler.
type ReminderNotifier struct{}

func NewReminderNotifier() *ReminderNotifier {
	return &ReminderNotifier{}
}

// HandleReminderDue validates and delivers one notice. A message with
// no payment id is unusable and reported as an error.
func (n *ReminderNotifier) HandleReminderDue(msg *amqp.ReminderDueMessage) error {
	if msg.PaymentID == "" {
		return fmt.Errorf("reminder message without payment id")
	}

	slog.Info("Reminder due",
		"payment_id", msg.PaymentID,
		"notice", NoticeText(msg))
	return nil
}

// NoticeText renders the one-line notice for a reminder message.
func NoticeText(msg *amqp.ReminderDueMessage) string {
	subject := msg.Description
	if subject == "" {
		subject = msg.Category
	}
	return fmt.Sprintf("%s payment %q of %.2f is due on %s", msg.Type, subject, msg.Value, msg.DueDate)
}
