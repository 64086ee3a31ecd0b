package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// AcquireSession defines the interface for the AcquireSession use case.
type AcquireSession interface {
	// Execute returns the live session of an equal configuration or starts a new one.
	Execute(ctx context.Context, kind domain.CapabilityKind, options map[string]string) (domain.SessionSnapshot, error)
}

// AcquireSessionImpl is the implementation of the AcquireSession use case.
type AcquireSessionImpl struct {
	registry *capability.Registry
}

// NewAcquireSessionImpl creates a new instance of AcquireSessionImpl.
func NewAcquireSessionImpl(registry *capability.Registry) AcquireSessionImpl {
	return AcquireSessionImpl{
		registry: registry,
	}
}

// Execute acquires a session. A downloadable configuration returns while the
// session is still downloading.
func (a AcquireSessionImpl) Execute(ctx context.Context, kind domain.CapabilityKind, options map[string]string) (domain.SessionSnapshot, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	session, err := a.registry.GetOrCreateSession(spanCtx, kind, options)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SessionSnapshot{}, err
	}
	return session.Snapshot(), nil
}

// InitAcquireSession initializes the AcquireSession use case.
type InitAcquireSession struct {
	Registry *capability.Registry `resolve:""`
}

// Initialize registers the AcquireSession use case in the dependency container.
func (i InitAcquireSession) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AcquireSession](NewAcquireSessionImpl(i.Registry))
	return ctx, nil
}
