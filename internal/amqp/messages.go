package amqp

import (
	"encoding/json"
	"time"
)

// ReminderDueMessage announces one reminder firing for a recurring
// payment. Consumers (notification senders) get everything needed to
// render the notice without reading the store.
type ReminderDueMessage struct {
	PaymentID   string    `json:"paymentId"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Value       float64   `json:"value"`
	Description string    `json:"description"`
	DueDate     string    `json:"dueDate"`
	OffsetDays  int       `json:"offsetDays"`
	OffsetHours int       `json:"offsetHours"`
	FireAt      time.Time `json:"fireAt"`
	Timestamp   time.Time `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes
func (m *ReminderDueMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReminderDueMessageFromJSON creates a message from JSON bytes
func ReminderDueMessageFromJSON(data []byte) (*ReminderDueMessage, error) {
	var msg ReminderDueMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
