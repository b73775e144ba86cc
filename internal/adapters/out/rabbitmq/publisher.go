// Package rabbitmq publishes committed job lifecycle events to a topic
// exchange. Each event becomes one JSON message whose routing key is the
// event type, for example "job.labour_accepted".
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"harvest/internal/core/domain/model/job"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is used when no exchange name is configured.
const DefaultExchange = "harvest.jobs"

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.EventPublisher over an AMQP channel.
type Publisher struct {
	channel  channel
	exchange string
	now      func() time.Time
}

// message is the wire form of a job event.
type message struct {
	Event      string  `json:"event"`
	JobID      string  `json:"job_id"`
	FarmerID   string  `json:"farmer_id"`
	ProviderID *string `json:"provider_id,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}

// NewPublisher opens a channel on conn and declares a durable topic exchange.
func NewPublisher(conn *amqp.Connection, exchange string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if exchange == "" {
		exchange = DefaultExchange
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return newPublisher(ch, exchange), nil
}

func newPublisher(ch channel, exchange string) *Publisher {
	return &Publisher{
		channel:  ch,
		exchange: exchange,
		now:      time.Now,
	}
}

// Publish sends events in order and stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, events ...job.Event) error {
	for _, e := range events {
		body, err := json.Marshal(toMessage(e, p.now()))
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.Type, err)
		}

		err = p.channel.PublishWithContext(ctx,
			p.exchange,
			string(e.Type),
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    e.JobID.String() + ":" + string(e.Type),
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish %s for job %s: %w", e.Type, e.JobID, err)
		}
	}
	return nil
}

// Close releases the channel. The connection is owned by the caller.
func (p *Publisher) Close() error {
	return p.channel.Close()
}

func toMessage(e job.Event, at time.Time) message {
	m := message{
		Event:      string(e.Type),
		JobID:      e.JobID.String(),
		FarmerID:   e.FarmerID.String(),
		OccurredAt: at.UTC().Format(time.RFC3339),
	}
	if e.ProviderID != nil {
		id := e.ProviderID.String()
		m.ProviderID = &id
	}
	return m
}
