package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	domainevents "github.com/reelstack/catalog/internal/domain/events"
)

// Publisher implements the domain event publisher on NATS JetStream.
type Publisher struct {
	client *Client
	logger *zap.Logger
}

// NewPublisher creates a new NATS event publisher
func NewPublisher(client *Client, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		logger: logger.Named("publisher"),
	}
}

// Publish serializes a domain event into an envelope and publishes it to the
// subject derived from its event type.
func (p *Publisher) Publish(ctx context.Context, event domainevents.DomainEvent) error {
	subject := subjectFor(event)

	envelope := EventEnvelope{
		EventType:  event.EventType(),
		OccurredOn: event.OccurredOn(),
		Data:       event,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ack, err := p.client.JetStream().Publish(pubCtx, subject, data)
	if err != nil {
		p.logger.Error("failed to publish event",
			zap.Error(err),
			zap.String("event_type", event.EventType()),
			zap.String("subject", subject),
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Info("event published",
		zap.String("event_type", event.EventType()),
		zap.String("subject", subject),
		zap.Uint64("sequence", ack.Sequence),
		zap.String("stream", ack.Stream),
	)

	return nil
}

// subjectFor maps an event type onto the catalog subject space, e.g.
// video.media.created becomes catalog.video.media.created.
func subjectFor(event domainevents.DomainEvent) string {
	return "catalog." + event.EventType()
}

// EventEnvelope wraps an event with metadata for transport
type EventEnvelope struct {
	EventType  string                   `json:"event_type"`
	OccurredOn time.Time                `json:"occurred_on"`
	Data       domainevents.DomainEvent `json:"data"`
}
