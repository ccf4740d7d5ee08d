// Package events publishes domain events as JSON on NATS.
//
// Subjects are "<prefix>.<subject>", e.g. servicebook.payments.succeeded.
// Publishing is fire-and-forget: callers publish after their transaction
// commits and treat failures as non-fatal.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/heartmarshall/servicebook-backend/internal/config"
	"github.com/heartmarshall/servicebook-backend/internal/domain"
)

// envelope is the wire format of every event.
type envelope struct {
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// Publisher publishes events to a NATS connection.
type Publisher struct {
	nc     *nats.Conn
	prefix string
	log    *slog.Logger
}

// Connect dials NATS using cfg and returns a Publisher that owns the connection.
func Connect(cfg config.EventsConfig, logger *slog.Logger) (*Publisher, error) {
	log := logger.With("adapter", "events")

	nc, err := nats.Connect(cfg.URL,
		nats.Name("servicebook-backend"),
		nats.Timeout(cfg.Timeout),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("events: connect %s: %w", cfg.URL, err)
	}

	return &Publisher{nc: nc, prefix: cfg.SubjectPrefix, log: log}, nil
}

// NewPublisher wraps an existing connection.
func NewPublisher(nc *nats.Conn, prefix string, logger *slog.Logger) *Publisher {
	return &Publisher{nc: nc, prefix: prefix, log: logger.With("adapter", "events")}
}

// Subject returns the fully qualified subject for s.
func (p *Publisher) Subject(s string) string {
	if p.prefix == "" {
		return s
	}
	return p.prefix + "." + s
}

// Publish sends each message. It attempts every message and returns the
// first error encountered.
func (p *Publisher) Publish(ctx context.Context, msgs ...domain.Message) error {
	var firstErr error

	for _, m := range msgs {
		subject := p.Subject(m.Subject)

		data, err := json.Marshal(envelope{Subject: subject, OccurredAt: time.Now().UTC(), Data: m.Payload})
		if err != nil {
			err = fmt.Errorf("events: marshal %s: %w", subject, err)
		} else if err = p.nc.Publish(subject, data); err != nil {
			err = fmt.Errorf("events: publish %s: %w", subject, err)
		}

		if err != nil {
			p.log.WarnContext(ctx, "event publish failed", slog.String("subject", subject), slog.String("error", err.Error()))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// Ping reports whether the connection is usable.
func (p *Publisher) Ping(_ context.Context) error {
	if !p.nc.IsConnected() {
		return fmt.Errorf("events: nats status %s", p.nc.Status())
	}
	return nil
}

// Close drains pending messages and closes the connection.
func (p *Publisher) Close() error {
	return p.nc.Drain()
}

// Nop discards every event. It is wired when events are disabled.
type Nop struct{}

// Publish does nothing.
func (Nop) Publish(context.Context, ...domain.Message) error { return nil }
