package domain

import (
	"context"
	"time"
)

// CapabilityProvider is the host-supplied, on-device implementation of one capability kind.
type CapabilityProvider interface {
	// Availability reports whether a session can be created for cfg. It must not create a handle.
	Availability(ctx context.Context, cfg CapabilityConfig) (AvailabilityStatus, error)
	// CreateHandle creates a provider instance for cfg. The handle may still be downloading.
	CreateHandle(ctx context.Context, cfg CapabilityConfig) (CapabilityHandle, error)
}

// CapabilityHandle is one live provider instance.
type CapabilityHandle interface {
	// DownloadProgress emits the progress of the download phase in non-decreasing
	// order. The channel is closed before Ready returns.
	DownloadProgress() <-chan DownloadProgress
	// Ready blocks until the handle is invocable.
	Ready(ctx context.Context) error
	// Invoke runs one inference call.
	Invoke(ctx context.Context, req InvocationRequest) (InvocationResult, error)
	// Release frees the provider-side resources. It is idempotent.
	Release()
}

// ProviderCatalog exposes the providers implemented by the host environment.
type ProviderCatalog interface {
	// Provider returns the provider of kind, or false when the host has none.
	Provider(kind CapabilityKind) (CapabilityProvider, bool)
}

// ProviderCatalogMap is a ProviderCatalog backed by a map.
type ProviderCatalogMap map[CapabilityKind]CapabilityProvider

// Provider implements ProviderCatalog.
func (m ProviderCatalogMap) Provider(kind CapabilityKind) (CapabilityProvider, bool) {
	p, ok := m[kind]
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// CurrentTimeProvider provides the current time. Session timestamps and idle
// tracking read the clock only through it.
type CurrentTimeProvider interface {
	Now() time.Time
}
