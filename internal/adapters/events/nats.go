// Package events is the NATS implementation of the events.Publisher port.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Haleralex/ftwallet/internal/domain/events"
	"github.com/nats-io/nats.go"
)

// NATSPublisher publishes transaction events to a NATS subject per event
// type. Publishing is fire-and-forget: a failed publish is logged and
// dropped, never surfaced to the caller's transaction path.
type NATSPublisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// NewNATSPublisher connects to the given NATS URL.
func NewNATSPublisher(url string, logger *slog.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := nats.Connect(url,
		nats.Name("ftwallet"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}

	logger.Info("connected to NATS", slog.String("url", url))
	return &NATSPublisher{conn: conn, logger: logger}, nil
}

// Publish sends the event on its type subject ("wallet.tx.committed", …).
func (p *NATSPublisher) Publish(_ context.Context, event events.TransactionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}

	if err := p.conn.Publish(event.EventType, payload); err != nil {
		return fmt.Errorf("publish %s: %w", event.EventType, err)
	}
	return nil
}

// Close flushes buffered messages and drops the connection.
func (p *NATSPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.conn.Flush(); err != nil {
		p.logger.Warn("NATS flush on close failed", slog.String("error", err.Error()))
	}
	p.conn.Close()
	return nil
}

var _ events.Publisher = (*NATSPublisher)(nil)
