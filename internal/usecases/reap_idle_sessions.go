package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// ReapIdleSessions defines the interface for the ReapIdleSessions use case.
type ReapIdleSessions interface {
	Execute(ctx context.Context) (int, error)
}

// ReapIdleSessionsImpl is the implementation of the ReapIdleSessions use case.
type ReapIdleSessionsImpl struct {
	registry    *capability.Registry
	idleTimeout time.Duration
}

// NewReapIdleSessionsImpl creates a new instance of ReapIdleSessionsImpl.
func NewReapIdleSessionsImpl(registry *capability.Registry, idleTimeout time.Duration) ReapIdleSessionsImpl {
	return ReapIdleSessionsImpl{
		registry:    registry,
		idleTimeout: idleTimeout,
	}
}

// Execute releases the ready sessions idle for longer than the configured
// timeout and returns how many were released. A zero timeout disables reaping.
func (r ReapIdleSessionsImpl) Execute(ctx context.Context) (int, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	if r.idleTimeout <= 0 {
		return 0, nil
	}

	reaped := r.registry.ReapIdle(r.idleTimeout)
	span.SetAttributes(attribute.Int("sessions.reaped", len(reaped)))
	return len(reaped), nil
}

// InitReapIdleSessions initializes the ReapIdleSessions use case.
type InitReapIdleSessions struct {
	Registry    *capability.Registry `resolve:""`
	IdleTimeout time.Duration        `config:"SESSION_IDLE_TIMEOUT" default:"0"`
}

// Initialize registers the ReapIdleSessions use case in the dependency container.
func (i InitReapIdleSessions) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ReapIdleSessions](NewReapIdleSessionsImpl(i.Registry, i.IdleTimeout))
	return ctx, nil
}
