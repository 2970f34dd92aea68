// Package events defines domain events that represent significant ledger
// occurrences. Events are immutable facts about what happened in the past.
//
// The wallet core never depends on a concrete transport: the Publisher port
// is implemented by the NATS adapter in production and by a no-op in tests
// and minimal deployments. Publishing is strictly fire-and-forget; a lost
// event never affects ledger or replication semantics.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the replicated writer.
const (
	TypeTransactionCommitted = "wallet.tx.committed"
	TypeTransactionRejected  = "wallet.tx.rejected"
)

// TransactionEvent describes the outcome of one mutating wallet operation.
type TransactionEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	EventType     string    `json:"event_type"`
	TransactionID string    `json:"transaction_id"`
	AccountID     string    `json:"account_id"`
	Operation     string    `json:"operation"`
	Amount        float64   `json:"amount"`
	NewBalance    float64   `json:"new_balance"`
	FailoverMode  bool      `json:"failover_mode"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewTransactionEvent creates an event for a completed operation.
func NewTransactionEvent(eventType, txnID, accountID, operation string, amount, newBalance float64, failover bool) TransactionEvent {
	return TransactionEvent{
		EventID:       uuid.New(),
		EventType:     eventType,
		TransactionID: txnID,
		AccountID:     accountID,
		Operation:     operation,
		Amount:        amount,
		NewBalance:    newBalance,
		FailoverMode:  failover,
		OccurredAt:    time.Now().UTC(),
	}
}

// Publisher is the outbound port for transaction events.
type Publisher interface {
	Publish(ctx context.Context, event TransactionEvent) error
	Close() error
}

// NoopPublisher discards all events. Used when eventing is disabled.
type NoopPublisher struct{}

// Publish implements Publisher.
func (NoopPublisher) Publish(context.Context, TransactionEvent) error { return nil }

// Close implements Publisher.
func (NoopPublisher) Close() error { return nil }
