package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_SESSION_ACQUIRED is emitted when a new session is created.
	EventType_SESSION_ACQUIRED EventType = "SESSION.ACQUIRED"
	// EventType_SESSION_READY is emitted when a session becomes invocable.
	EventType_SESSION_READY EventType = "SESSION.READY"
	// EventType_SESSION_UNAVAILABLE is emitted when the probe rejects a session.
	EventType_SESSION_UNAVAILABLE EventType = "SESSION.UNAVAILABLE"
	// EventType_SESSION_RELEASED is emitted when a session is torn down.
	EventType_SESSION_RELEASED EventType = "SESSION.RELEASED"
)

// SessionEvent is a lifecycle event of a capability session.
type SessionEvent struct {
	Type      EventType      `json:"type"`
	SessionID uuid.UUID      `json:"sessionId"`
	Kind      CapabilityKind `json:"kind"`
	ConfigKey string         `json:"configKey"`
	State     SessionState   `json:"state"`
	CreatedAt time.Time      `json:"createdAt"`
}

// SessionEventPublisher publishes session lifecycle events to interested parties.
type SessionEventPublisher interface {
	PublishSessionEvent(ctx context.Context, event SessionEvent) error
}

// InvocationLogRepository stores the audit trail of invocations.
type InvocationLogRepository interface {
	// RecordInvocation stores one invocation record.
	RecordInvocation(ctx context.Context, record InvocationRecord) error
	// ListInvocations returns a page of records, newest first, and whether more pages exist.
	ListInvocations(ctx context.Context, page, pageSize int) ([]InvocationRecord, bool, error)
}
