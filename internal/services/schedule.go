package services

import (
	"fmt"
	"time"

	"budgetly/internal/core"
)

// DueDateLayout is the calendar-date form recurring payments carry in
// their startDate field.
const DueDateLayout = "2006-01-02"

// occurrenceCap bounds occurrence expansion inside the window so a
// daily frequency over a wide window cannot loop unbounded.
const occurrenceCap = 1000

// ReminderInstance is one concrete reminder firing: a payment occurrence
// due at Due, announced at At (Due minus the Offset).
type ReminderInstance struct {
	Payment core.RecurringPayment
	Due     time.Time
	Offset  core.Reminder
	At      time.Time
}

// NextOccurrence advances a due date by one period of the frequency.
// Unknown frequencies do not advance; callers detect that by the
// returned time equalling the input.
func NextOccurrence(due time.Time, frequency string) time.Time {
	switch frequency {
	case "daily":
		return due.AddDate(0, 0, 1)
	case "weekly":
		return due.AddDate(0, 0, 7)
	case "monthly":
		return due.AddDate(0, 1, 0)
	case "yearly":
		return due.AddDate(1, 0, 0)
	default:
		return due
	}
}

// offsetDuration converts a reminder offset to a duration before the
// due date.
func offsetDuration(r core.Reminder) time.Duration {
	return time.Duration(r.Days)*24*time.Hour + time.Duration(r.Hours)*time.Hour
}

// UpcomingReminders expands a payment's occurrences from its start date
// and returns every reminder instance whose fire time falls inside
// [from, to). A payment with an unparsable start date is an error; one
// with no reminder offsets yields nothing.
func UpcomingReminders(payment core.RecurringPayment, from, to time.Time) ([]ReminderInstance, error) {
	start, err := time.Parse(DueDateLayout, payment.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date %q: %w", payment.StartDate, err)
	}
	if len(payment.Reminders) == 0 {
		return nil, nil
	}

	var maxOffset time.Duration
	for _, r := range payment.Reminders {
		if d := offsetDuration(r); d > maxOffset {
			maxOffset = d
		}
	}

	var instances []ReminderInstance
	due := fastForward(start, from, payment.Frequency)
	for i := 0; i < occurrenceCap; i++ {
		for _, offset := range payment.Reminders {
			at := due.Add(-offsetDuration(offset))
			if !at.Before(from) && at.Before(to) {
				instances = append(instances, ReminderInstance{
					Payment: payment,
					Due:     due,
					Offset:  offset,
					At:      at,
				})
			}
		}

		next := NextOccurrence(due, payment.Frequency)
		if next.Equal(due) {
			break
		}
		due = next
		// Every later occurrence's reminders fire after the window.
		if due.Add(-maxOffset).After(to) {
			break
		}
	}

	return instances, nil
}

// fastForward advances due to the first occurrence not before from.
// Reminder offsets are non-negative, so an occurrence due before from
// cannot fire inside the window and is safe to skip. Fixed-length
// frequencies jump arithmetically; calendar-length ones walk, one cheap
// step per period.
func fastForward(due, from time.Time, frequency string) time.Time {
	if !due.Before(from) {
		return due
	}

	var stepDays int
	switch frequency {
	case "daily":
		stepDays = 1
	case "weekly":
		stepDays = 7
	}
	if stepDays > 0 {
		behind := int(from.Sub(due).Hours() / 24)
		due = due.AddDate(0, 0, behind/stepDays*stepDays)
	}

	for due.Before(from) {
		next := NextOccurrence(due, frequency)
		if next.Equal(due) {
			break
		}
		due = next
	}
	return due
}
