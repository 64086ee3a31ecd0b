package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ReleaseSession defines the interface for the ReleaseSession use case.
type ReleaseSession interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

// ReleaseSessionImpl is the implementation of the ReleaseSession use case.
type ReleaseSessionImpl struct {
	registry *capability.Registry
}

// NewReleaseSessionImpl creates a new instance of ReleaseSessionImpl.
func NewReleaseSessionImpl(registry *capability.Registry) ReleaseSessionImpl {
	return ReleaseSessionImpl{
		registry: registry,
	}
}

// Execute releases a live session. In-flight downloads and invocations of the
// session are cancelled.
func (r ReleaseSessionImpl) Execute(ctx context.Context, id uuid.UUID) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	err := r.registry.Release(id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitReleaseSession initializes the ReleaseSession use case.
type InitReleaseSession struct {
	Registry *capability.Registry `resolve:""`
}

// Initialize registers the ReleaseSession use case in the dependency container.
func (i InitReleaseSession) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ReleaseSession](NewReleaseSessionImpl(i.Registry))
	return ctx, nil
}
