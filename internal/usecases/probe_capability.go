package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ProbeCapability defines the interface for the ProbeCapability use case.
type ProbeCapability interface {
	// Query reports whether a session of kind can be created with options, without creating it.
	Query(ctx context.Context, kind domain.CapabilityKind, options map[string]string) (domain.AvailabilityStatus, error)
}

// ProbeCapabilityImpl is the implementation of the ProbeCapability use case.
type ProbeCapabilityImpl struct {
	registry *capability.Registry
}

// NewProbeCapabilityImpl creates a new instance of ProbeCapabilityImpl.
func NewProbeCapabilityImpl(registry *capability.Registry) ProbeCapabilityImpl {
	return ProbeCapabilityImpl{
		registry: registry,
	}
}

// Query probes the provider of kind.
func (p ProbeCapabilityImpl) Query(ctx context.Context, kind domain.CapabilityKind, options map[string]string) (domain.AvailabilityStatus, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	status, err := p.registry.Probe(spanCtx, kind, options)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AvailabilityStatus_Unavailable, err
	}
	return status, nil
}

// InitProbeCapability initializes the ProbeCapability use case.
type InitProbeCapability struct {
	Registry *capability.Registry `resolve:""`
}

// Initialize registers the ProbeCapability use case in the dependency container.
func (i InitProbeCapability) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ProbeCapability](NewProbeCapabilityImpl(i.Registry))
	return ctx, nil
}
