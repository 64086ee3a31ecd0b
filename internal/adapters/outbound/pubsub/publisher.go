package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SessionEventPublisher implements domain.SessionEventPublisher using Google Cloud Pub/Sub.
type SessionEventPublisher struct {
	client  *pubsubV2.Client
	topicID string
	timeout time.Duration
}

// NewSessionEventPublisher creates a publisher for topicID. A publish waits at
// most timeout for the server acknowledgement.
func NewSessionEventPublisher(client *pubsubV2.Client, topicID string, timeout time.Duration) SessionEventPublisher {
	return SessionEventPublisher{
		client:  client,
		topicID: topicID,
		timeout: timeout,
	}
}

// PublishSessionEvent publishes the event as JSON. The attributes carry the
// event type, the session id and the capability kind so that subscribers can
// filter without decoding the payload.
func (p SessionEventPublisher) PublishSessionEvent(ctx context.Context, event domain.SessionEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_type", string(event.Type)),
			attribute.String("session_id", event.SessionID.String()),
			attribute.String("topic", p.topicID),
		),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal session event: %w", err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		spanCtx, cancel = context.WithTimeout(spanCtx, p.timeout)
		defer cancel()
	}

	result := p.client.Publisher(p.topicID).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": string(event.Type),
			"session_id": event.SessionID.String(),
			"kind":       event.Kind.String(),
		},
	})

	_, err = result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitSessionEventPublisher registers the Pub/Sub publisher as the domain.SessionEventPublisher.
type InitSessionEventPublisher struct {
	Client         *pubsubV2.Client `resolve:""`
	TopicID        string           `config:"CAPABILITY_EVENTS_TOPIC_ID" default:"capability-events"`
	PublishTimeout time.Duration    `config:"PUBSUB_PUBLISH_TIMEOUT" default:"5s"`
}

// Initialize registers the SessionEventPublisher.
func (i *InitSessionEventPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SessionEventPublisher](NewSessionEventPublisher(i.Client, i.TopicID, i.PublishTimeout))
	return ctx, nil
}
