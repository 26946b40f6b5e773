package events

import (
	"context"
	"time"
)

// DomainEvent is a fact recorded by an aggregate. Events are buffered on the
// aggregate that raised them and drained by the use case after a successful
// persistence call.
type DomainEvent interface {
	// EventType identifies the kind of event for routing and serialization.
	EventType() string
	// OccurredOn returns when the event happened.
	OccurredOn() time.Time
}

// Publisher delivers domain events to downstream infrastructure. It must be
// invoked only after the state that produced the events has been persisted.
type Publisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}
