package usecases

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/stretchr/testify/mock"
)

var fixedTime = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// capabilityFixture wires a real registry and dispatcher to one mocked
// provider and handle per capability kind.
type capabilityFixture struct {
	providers  map[domain.CapabilityKind]*domain.MockCapabilityProvider
	handles    map[domain.CapabilityKind]*domain.MockCapabilityHandle
	registry   *capability.Registry
	dispatcher *capability.Dispatcher
}

func newCapabilityFixture(t *testing.T, kinds ...domain.CapabilityKind) *capabilityFixture {
	t.Helper()
	f := &capabilityFixture{
		providers: map[domain.CapabilityKind]*domain.MockCapabilityProvider{},
		handles:   map[domain.CapabilityKind]*domain.MockCapabilityHandle{},
	}
	catalog := domain.ProviderCatalogMap{}
	for _, kind := range kinds {
		provider := domain.NewMockCapabilityProvider(t)
		handle := domain.NewMockCapabilityHandle(t)
		handle.EXPECT().Release().Maybe()
		f.providers[kind] = provider
		f.handles[kind] = handle
		catalog[kind] = provider
	}

	timeProvider := domain.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	f.registry = capability.NewRegistry(catalog, timeProvider, nil, discardLogger())
	f.dispatcher = capability.NewDispatcher(f.registry, nil)
	t.Cleanup(f.registry.Close)
	return f
}

// expectReady makes the provider of kind create a ready handle once.
func (f *capabilityFixture) expectReady(kind domain.CapabilityKind) {
	f.providers[kind].EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Ready, nil).Once()
	f.providers[kind].EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(f.handles[kind], nil).Once()
}

// expectDownload makes the provider of kind create a handle that replays events
// and becomes ready once they are consumed.
func (f *capabilityFixture) expectDownload(kind domain.CapabilityKind, events ...domain.DownloadProgress) {
	progress := make(chan domain.DownloadProgress, len(events))
	for _, e := range events {
		progress <- e
	}
	close(progress)

	f.providers[kind].EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Downloadable, nil).Once()
	f.providers[kind].EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(f.handles[kind], nil).Once()
	f.handles[kind].EXPECT().DownloadProgress().Return(progress).Once()
	f.handles[kind].EXPECT().Ready(mock.Anything).Return(nil).Once()
}

// expectStalledDownload makes the provider of kind create a handle whose
// download never completes on its own.
func (f *capabilityFixture) expectStalledDownload(kind domain.CapabilityKind) {
	f.providers[kind].EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Downloadable, nil).Once()
	f.providers[kind].EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(f.handles[kind], nil).Once()
	f.handles[kind].EXPECT().DownloadProgress().Return(make(chan domain.DownloadProgress)).Once()
}
