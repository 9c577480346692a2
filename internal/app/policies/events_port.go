package policies

import "context"

// EventPublisher forwards domain events to the message broker. A nil
// publisher is valid and drops events.
type EventPublisher interface {
	Publish(ctx context.Context, event string, key string, payload []byte) error
}
