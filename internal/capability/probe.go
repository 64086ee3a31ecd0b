package capability

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
)

// Probe queries the providers of the host for the availability of a configuration.
type Probe struct {
	catalog domain.ProviderCatalog
}

// NewProbe creates a Probe over the given catalog.
func NewProbe(catalog domain.ProviderCatalog) Probe {
	return Probe{catalog: catalog}
}

// Provider returns the provider of kind, or a ProviderAbsentErr.
func (p Probe) Provider(kind domain.CapabilityKind) (domain.CapabilityProvider, error) {
	provider, ok := p.catalog.Provider(kind)
	if !ok {
		return nil, domain.NewProviderAbsentErr(kind)
	}
	return provider, nil
}

// Probe returns the availability of cfg. It never creates a provider handle.
func (p Probe) Probe(ctx context.Context, cfg domain.CapabilityConfig) (domain.AvailabilityStatus, error) {
	provider, err := p.Provider(cfg.Kind())
	if err != nil {
		return domain.AvailabilityStatus_Unavailable, err
	}

	status, err := provider.Availability(ctx, cfg)
	if err != nil {
		return domain.AvailabilityStatus_Unavailable, fmt.Errorf("failed to probe %s availability: %w", cfg.Kind(), err)
	}

	switch status {
	case domain.AvailabilityStatus_Ready, domain.AvailabilityStatus_Downloadable, domain.AvailabilityStatus_Unavailable:
		return status, nil
	default:
		return domain.AvailabilityStatus_Unavailable, fmt.Errorf("provider returned unknown availability %q for %s", status, cfg.Kind())
	}
}
