// Package events publishes notifications about ledger changes.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Kind names a ledger change. It doubles as the AMQP routing key.
type Kind string

const (
	ProjectCreated  Kind = "project.created"
	ProjectDeleted  Kind = "project.deleted"
	CategoryCreated Kind = "category.created"
	CategoryDeleted Kind = "category.deleted"
	PaymentRecorded Kind = "payment.recorded"
	PaymentDeleted  Kind = "payment.deleted"
	ExpenseAdded    Kind = "expense.added"
	ExpenseDeleted  Kind = "expense.deleted"
)

// LedgerEvent is a lightweight change notification. Consumers fetch the
// current state through the API; the event only says what changed.
type LedgerEvent struct {
	Kind      Kind      `json:"kind"`
	ProjectID string    `json:"projectId"`
	EntityID  string    `json:"entityId"`
	Timestamp time.Time `json:"timestamp"`
}

// NewLedgerEvent creates an event stamped with the current time.
func NewLedgerEvent(kind Kind, projectID, entityID string) LedgerEvent {
	return LedgerEvent{
		Kind:      kind,
		ProjectID: projectID,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerEventFromJSON decodes an event.
func LedgerEventFromJSON(data []byte) (LedgerEvent, error) {
	var e LedgerEvent
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher delivers ledger events.
type Publisher interface {
	Publish(ctx context.Context, event LedgerEvent) error
	Close() error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, LedgerEvent) error { return nil }
func (Nop) Close() error                               { return nil }
