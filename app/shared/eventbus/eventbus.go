package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/matchday-club/predictor/app/shared/attr"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventBus is the notification sink for match and prediction events. Publishes
// are fire-and-forget from the caller's perspective: the core never blocks a
// user-facing operation on delivery.
type EventBus interface {
	Publish(ctx context.Context, subject string, msg *message.Message) error
	PublishJSON(ctx context.Context, subject string, payload any) error
	EnsureStream(ctx context.Context, streamName string, subjects ...string) error
	Close() error
}

type eventBus struct {
	publisher      message.Publisher
	js             jetstream.JetStream
	natsConn       *nc.Conn
	logger         *slog.Logger
	createdStreams map[string]bool
	streamMutex    sync.Mutex
}

// NewEventBus connects to NATS JetStream and returns a bus backed by a
// watermill publisher.
func NewEventBus(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:       natsURL,
			Marshaler: &wmnats.NATSMarshaler{},
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to create watermill publisher: %w", err)
	}

	return &eventBus{
		publisher:      publisher,
		js:             js,
		natsConn:       natsConn,
		logger:         logger,
		createdStreams: make(map[string]bool),
	}, nil
}

func (eb *eventBus) Publish(ctx context.Context, subject string, msg *message.Message) error {
	if msg.UUID == "" {
		msg.UUID = watermill.NewUUID()
	}

	eb.logger.DebugContext(ctx, "Publishing message",
		attr.String("subject", subject),
		attr.String("message_id", msg.UUID),
	)

	ack, err := eb.js.Publish(ctx, subject, msg.Payload)
	if err != nil {
		eb.logger.ErrorContext(ctx, "Failed to publish message",
			attr.String("subject", subject),
			attr.Error(err),
		)
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	eb.logger.DebugContext(ctx, "Message published",
		attr.String("subject", subject),
		attr.Int64("sequence", int64(ack.Sequence)),
	)

	return nil
}

// PublishJSON marshals payload and publishes it on the given subject.
func (eb *eventBus) PublishJSON(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", subject, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("subject", subject)

	return eb.Publish(ctx, subject, msg)
}

// EnsureStream creates the stream if missing and adds any subjects it does not
// yet cover. Safe to call repeatedly; successes are memoized per process.
func (eb *eventBus) EnsureStream(ctx context.Context, streamName string, subjects ...string) error {
	eb.streamMutex.Lock()
	defer eb.streamMutex.Unlock()

	if eb.createdStreams[streamName] {
		return nil
	}

	stream, err := eb.js.Stream(ctx, streamName)
	if err != nil && err != jetstream.ErrStreamNotFound {
		return fmt.Errorf("failed to check stream %s: %w", streamName, err)
	}

	if err == jetstream.ErrStreamNotFound {
		_, err = eb.js.CreateStream(ctx, jetstream.StreamConfig{
			Name:     streamName,
			Subjects: subjects,
		})
		if err != nil {
			return fmt.Errorf("failed to create stream %s: %w", streamName, err)
		}
		eb.logger.InfoContext(ctx, "Created JetStream stream",
			attr.String("stream", streamName),
		)
	} else {
		info, err := stream.Info(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stream info for %s: %w", streamName, err)
		}

		existing := make(map[string]bool, len(info.Config.Subjects))
		for _, s := range info.Config.Subjects {
			existing[s] = true
		}

		changed := false
		for _, s := range subjects {
			if !existing[s] {
				info.Config.Subjects = append(info.Config.Subjects, s)
				changed = true
			}
		}

		if changed {
			if _, err := eb.js.UpdateStream(ctx, info.Config); err != nil {
				return fmt.Errorf("failed to update stream %s: %w", streamName, err)
			}
			eb.logger.InfoContext(ctx, "Updated JetStream stream subjects",
				attr.String("stream", streamName),
			)
		}
	}

	eb.createdStreams[streamName] = true
	return nil
}

// Close closes all NATS and watermill resources.
func (eb *eventBus) Close() error {
	if eb.publisher != nil {
		if err := eb.publisher.Close(); err != nil {
			eb.logger.Error("Failed to close watermill publisher", attr.Error(err))
		}
	}
	if eb.natsConn != nil {
		eb.natsConn.Close()
	}
	return nil
}
