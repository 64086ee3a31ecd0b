package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// WatchSession defines the interface for the WatchSession use case.
type WatchSession interface {
	// Stream sends every download progress event of the session, then the
	// state it settles in.
	Stream(ctx context.Context, id uuid.UUID, onUpdate domain.SessionUpdateCallback) error
}

// WatchSessionImpl is the implementation of the WatchSession use case.
type WatchSessionImpl struct {
	registry *capability.Registry
}

// NewWatchSessionImpl creates a new instance of WatchSessionImpl.
func NewWatchSessionImpl(registry *capability.Registry) WatchSessionImpl {
	return WatchSessionImpl{
		registry: registry,
	}
}

// Stream replays the download phase of the session from its start.
func (w WatchSessionImpl) Stream(ctx context.Context, id uuid.UUID, onUpdate domain.SessionUpdateCallback) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	session, err := w.registry.Lookup(id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	for progress := range session.Progress().Events(spanCtx) {
		telemetry.AddProgressEvent(span, progress.Loaded, progress.Total)
		err := onUpdate(domain.SessionUpdate{
			Type:     domain.SessionUpdateType_Progress,
			Progress: progress,
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
	}

	// Unavailable and released sessions are reported through the snapshot.
	_ = session.AwaitReady(spanCtx)
	if err := spanCtx.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	err = onUpdate(domain.SessionUpdate{
		Type:     domain.SessionUpdateType_State,
		Snapshot: session.Snapshot(),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitWatchSession initializes the WatchSession use case.
type InitWatchSession struct {
	Registry *capability.Registry `resolve:""`
}

// Initialize registers the WatchSession use case in the dependency container.
func (i InitWatchSession) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[WatchSession](NewWatchSessionImpl(i.Registry))
	return ctx, nil
}
