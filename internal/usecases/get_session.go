package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// GetSession defines the interface for the GetSession use case.
type GetSession interface {
	Query(ctx context.Context, id uuid.UUID) (domain.SessionSnapshot, error)
}

// GetSessionImpl is the implementation of the GetSession use case.
type GetSessionImpl struct {
	registry *capability.Registry
}

// NewGetSessionImpl creates a new instance of GetSessionImpl.
func NewGetSessionImpl(registry *capability.Registry) GetSessionImpl {
	return GetSessionImpl{
		registry: registry,
	}
}

// Query returns the current state of a live session.
func (g GetSessionImpl) Query(ctx context.Context, id uuid.UUID) (domain.SessionSnapshot, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	session, err := g.registry.Lookup(id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SessionSnapshot{}, err
	}
	return session.Snapshot(), nil
}

// InitGetSession initializes the GetSession use case.
type InitGetSession struct {
	Registry *capability.Registry `resolve:""`
}

// Initialize registers the GetSession use case in the dependency container.
func (i InitGetSession) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetSession](NewGetSessionImpl(i.Registry))
	return ctx, nil
}
