package eventbus

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
)

// NoOpEventBus discards all publishes. Used in tests and when NATS is disabled
// in config.
type NoOpEventBus struct{}

func (NoOpEventBus) Publish(ctx context.Context, subject string, msg *message.Message) error {
	return nil
}

func (NoOpEventBus) PublishJSON(ctx context.Context, subject string, payload any) error {
	return nil
}

func (NoOpEventBus) EnsureStream(ctx context.Context, streamName string, subjects ...string) error {
	return nil
}

func (NoOpEventBus) Close() error { return nil }
