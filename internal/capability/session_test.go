package capability

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// transitionRecorder collects the transitions reported by a session.
type transitionRecorder struct {
	mu          sync.Mutex
	transitions []Transition
}

func (r *transitionRecorder) observe(_ context.Context, t Transition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, t)
}

func (r *transitionRecorder) count(from, to domain.SessionState) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.transitions {
		if t.From == from && t.To == to {
			n++
		}
	}
	return n
}

func mustConfig(t *testing.T, kind domain.CapabilityKind, options map[string]string) domain.CapabilityConfig {
	t.Helper()
	cfg, err := domain.NewCapabilityConfig(kind, options)
	require.NoError(t, err)
	return cfg
}

func translatorConfig(t *testing.T, source, target string) domain.CapabilityConfig {
	return mustConfig(t, domain.CapabilityKind_Translator, map[string]string{
		domain.ConfigField_SourceLanguage: source,
		domain.ConfigField_TargetLanguage: target,
	})
}

func progressChan(ch chan domain.DownloadProgress) <-chan domain.DownloadProgress {
	return ch
}

func TestSession_Start(t *testing.T) {
	probeErr := errors.New("connection refused")
	createErr := errors.New("model file is corrupted")

	tests := map[string]struct {
		withProvider bool
		setExpecs    func(provider *domain.MockCapabilityProvider, handle *domain.MockCapabilityHandle)
		wantState    domain.SessionState
		wantErr      func(t *testing.T, err error)
	}{
		"ready": {
			withProvider: true,
			setExpecs: func(provider *domain.MockCapabilityProvider, handle *domain.MockCapabilityHandle) {
				provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Ready, nil).Once()
				provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
			},
			wantState: domain.SessionState_Ready,
		},
		"downloadable": {
			withProvider: true,
			setExpecs: func(provider *domain.MockCapabilityProvider, handle *domain.MockCapabilityHandle) {
				provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Downloadable, nil).Once()
				provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
				// The download phase never reports progress in this case.
				handle.EXPECT().DownloadProgress().Return(progressChan(make(chan domain.DownloadProgress))).Once()
			},
			wantState: domain.SessionState_Downloading,
		},
		"unavailable": {
			withProvider: true,
			setExpecs: func(provider *domain.MockCapabilityProvider, handle *domain.MockCapabilityHandle) {
				provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Unavailable, nil).Once()
			},
			wantState: domain.SessionState_Unavailable,
			wantErr: func(t *testing.T, err error) {
				var unavailable *domain.UnavailableErr
				assert.ErrorAs(t, err, &unavailable)
			},
		},
		"provider-absent": {
			withProvider: false,
			setExpecs:    func(*domain.MockCapabilityProvider, *domain.MockCapabilityHandle) {},
			wantState:    domain.SessionState_Unavailable,
			wantErr: func(t *testing.T, err error) {
				var absent *domain.ProviderAbsentErr
				assert.ErrorAs(t, err, &absent)
			},
		},
		"probe-error": {
			withProvider: true,
			setExpecs: func(provider *domain.MockCapabilityProvider, handle *domain.MockCapabilityHandle) {
				provider.EXPECT().Availability(mock.Anything, mock.Anything).Return("", probeErr).Once()
			},
			wantState: domain.SessionState_Unavailable,
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, probeErr)
			},
		},
		"create-handle-error": {
			withProvider: true,
			setExpecs: func(provider *domain.MockCapabilityProvider, handle *domain.MockCapabilityHandle) {
				provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Ready, nil).Once()
				provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(nil, createErr).Once()
			},
			wantState: domain.SessionState_Unavailable,
			wantErr: func(t *testing.T, err error) {
				var failed *domain.ProviderInvocationFailedErr
				require.ErrorAs(t, err, &failed)
				assert.ErrorIs(t, err, createErr)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			provider := domain.NewMockCapabilityProvider(t)
			handle := domain.NewMockCapabilityHandle(t)
			tt.setExpecs(provider, handle)

			catalog := domain.ProviderCatalogMap{}
			if tt.withProvider {
				catalog[domain.CapabilityKind_Translator] = provider
			}

			s := NewSession(translatorConfig(t, "en", "es"), NewProbe(catalog), fixedTime, discardLogger(), nil)
			err := s.Start(context.Background())
			if tt.wantErr != nil {
				tt.wantErr(t, err)
				snapshot := s.Snapshot()
				assert.Equal(t, err, snapshot.Err)
				select {
				case <-s.Done():
				default:
					t.Fatal("failed session must be done")
				}
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantState, s.State())
		})
	}
}

func TestSession_StartTwice(t *testing.T) {
	provider := domain.NewMockCapabilityProvider(t)
	handle := domain.NewMockCapabilityHandle(t)
	provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Ready, nil).Once()
	provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()

	s := NewSession(translatorConfig(t, "en", "es"), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Translator: provider}), fixedTime, discardLogger(), nil)
	require.NoError(t, s.Start(context.Background()))
	assert.Error(t, s.Start(context.Background()))
}

func TestSession_InvokeTranslatorWhenReady(t *testing.T) {
	provider := domain.NewMockCapabilityProvider(t)
	handle := domain.NewMockCapabilityHandle(t)
	cfg := translatorConfig(t, "en", "es")

	provider.EXPECT().Availability(mock.Anything, cfg).Return(domain.AvailabilityStatus_Ready, nil).Once()
	provider.EXPECT().CreateHandle(mock.Anything, cfg).Return(handle, nil).Once()
	handle.EXPECT().Invoke(mock.Anything, domain.InvocationRequest{Input: "Hello"}).
		Return(domain.InvocationResult{Text: "Hola"}, nil).
		Once()

	s := NewSession(cfg, NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Translator: provider}), fixedTime, discardLogger(), nil)
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.AwaitReady(context.Background()))

	got, err := s.Invoke(context.Background(), domain.InvocationRequest{Input: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, domain.InvocationResult{Kind: domain.CapabilityKind_Translator, Text: "Hola"}, got)
	assert.NotEmpty(t, got.Text)
	assert.Equal(t, domain.SessionState_Ready, s.State())

	snapshot := s.Snapshot()
	assert.False(t, snapshot.IsDownloading)
	assert.Equal(t, domain.DownloadProgress{}, snapshot.Progress)
}

func TestSession_InvokeFailure(t *testing.T) {
	providerErr := errors.New("out of memory")

	tests := map[string]struct {
		invokeErr error
		wantErr   func(t *testing.T, err error)
	}{
		"opaque-error-is-wrapped": {
			invokeErr: providerErr,
			wantErr: func(t *testing.T, err error) {
				var failed *domain.ProviderInvocationFailedErr
				require.ErrorAs(t, err, &failed)
				assert.Equal(t, "ProviderError", failed.Name)
				assert.Equal(t, "out of memory", failed.Message)
				assert.ErrorIs(t, err, providerErr)
			},
		},
		"provider-failure-is-kept": {
			invokeErr: domain.NewProviderInvocationFailedErr("QuotaExceededError", "input too long", nil),
			wantErr: func(t *testing.T, err error) {
				var failed *domain.ProviderInvocationFailedErr
				require.ErrorAs(t, err, &failed)
				assert.Equal(t, "QuotaExceededError", failed.Name)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			provider := domain.NewMockCapabilityProvider(t)
			handle := domain.NewMockCapabilityHandle(t)
			provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Ready, nil).Once()
			provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
			handle.EXPECT().Invoke(mock.Anything, mock.Anything).Return(domain.InvocationResult{}, tt.invokeErr).Once()

			cfg := mustConfig(t, domain.CapabilityKind_Summarizer, nil)
			s := NewSession(cfg, NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Summarizer: provider}), fixedTime, discardLogger(), nil)
			require.NoError(t, s.Start(context.Background()))

			_, err := s.Invoke(context.Background(), domain.InvocationRequest{Input: "long text"})
			tt.wantErr(t, err)
			assert.Equal(t, domain.SessionState_Ready, s.State(), "session returns to ready after a failed call")
		})
	}
}

func TestSession_InvokeOutsideReady(t *testing.T) {
	t.Run("uninitialized", func(t *testing.T) {
		s := NewSession(translatorConfig(t, "en", "es"), NewProbe(domain.ProviderCatalogMap{}), fixedTime, discardLogger(), nil)
		_, err := s.Invoke(context.Background(), domain.InvocationRequest{Input: "Hello"})
		var notReady *domain.SessionNotReadyErr
		require.ErrorAs(t, err, &notReady)
		assert.Equal(t, domain.SessionState_Uninitialized, notReady.State)
	})

	t.Run("probing", func(t *testing.T) {
		provider := domain.NewMockCapabilityProvider(t)
		unblock := make(chan struct{})
		provider.EXPECT().Availability(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, domain.CapabilityConfig) (domain.AvailabilityStatus, error) {
				<-unblock
				return domain.AvailabilityStatus_Unavailable, nil
			}).
			Once()

		s := NewSession(translatorConfig(t, "en", "es"), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Translator: provider}), fixedTime, discardLogger(), nil)
		started := make(chan error)
		go func() { started <- s.Start(context.Background()) }()

		require.Eventually(t, func() bool { return s.State() == domain.SessionState_Probing }, time.Second, time.Millisecond)
		_, err := s.Invoke(context.Background(), domain.InvocationRequest{Input: "Hello"})
		var notReady *domain.SessionNotReadyErr
		require.ErrorAs(t, err, &notReady)
		assert.Equal(t, domain.SessionState_Probing, notReady.State)

		close(unblock)
		assert.Error(t, <-started)
	})

	t.Run("downloading", func(t *testing.T) {
		provider := domain.NewMockCapabilityProvider(t)
		handle := domain.NewMockCapabilityHandle(t)
		progress := make(chan domain.DownloadProgress)
		provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Downloadable, nil).Once()
		provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
		handle.EXPECT().DownloadProgress().Return(progressChan(progress)).Once()
		handle.EXPECT().Release().Return().Once()

		s := NewSession(mustConfig(t, domain.CapabilityKind_Summarizer, nil), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Summarizer: provider}), fixedTime, discardLogger(), nil)
		require.NoError(t, s.Start(context.Background()))
		progress <- domain.DownloadProgress{Loaded: 1, Total: 10}

		_, err := s.Invoke(context.Background(), domain.InvocationRequest{Input: "text"})
		var notReady *domain.SessionNotReadyErr
		require.ErrorAs(t, err, &notReady)
		assert.Equal(t, domain.SessionState_Downloading, notReady.State)

		s.Release()
	})

	t.Run("unavailable", func(t *testing.T) {
		provider := domain.NewMockCapabilityProvider(t)
		provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Unavailable, nil).Once()

		s := NewSession(translatorConfig(t, "en", "zz"), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Translator: provider}), fixedTime, discardLogger(), nil)
		require.Error(t, s.Start(context.Background()))

		_, err := s.Invoke(context.Background(), domain.InvocationRequest{Input: "Hello"})
		var unavailable *domain.UnavailableErr
		assert.ErrorAs(t, err, &unavailable)
	})

	t.Run("destroyed", func(t *testing.T) {
		provider := domain.NewMockCapabilityProvider(t)
		handle := domain.NewMockCapabilityHandle(t)
		provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Ready, nil).Once()
		provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
		handle.EXPECT().Release().Return().Once()

		s := NewSession(translatorConfig(t, "en", "es"), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Translator: provider}), fixedTime, discardLogger(), nil)
		require.NoError(t, s.Start(context.Background()))
		s.Release()

		_, err := s.Invoke(context.Background(), domain.InvocationRequest{Input: "Hello"})
		var released *domain.SessionReleasedErr
		assert.ErrorAs(t, err, &released)
	})
}

func TestSession_ConcurrentInvoke(t *testing.T) {
	provider := domain.NewMockCapabilityProvider(t)
	handle := domain.NewMockCapabilityHandle(t)
	started := make(chan struct{})
	unblock := make(chan struct{})

	provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Ready, nil).Once()
	provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
	handle.EXPECT().Invoke(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.InvocationRequest) (domain.InvocationResult, error) {
			close(started)
			<-unblock
			return domain.InvocationResult{Text: "A short story"}, nil
		}).
		Once()

	s := NewSession(mustConfig(t, domain.CapabilityKind_Writer, nil), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Writer: provider}), fixedTime, discardLogger(), nil)
	require.NoError(t, s.Start(context.Background()))

	type outcome struct {
		result domain.InvocationResult
		err    error
	}
	first := make(chan outcome)
	go func() {
		res, err := s.Invoke(context.Background(), domain.InvocationRequest{Input: "Write a story"})
		first <- outcome{res, err}
	}()

	<-started
	assert.Equal(t, domain.SessionState_Invoking, s.State())

	_, err := s.Invoke(context.Background(), domain.InvocationRequest{Input: "Write another story"})
	var busy *domain.SessionBusyErr
	assert.ErrorAs(t, err, &busy)

	close(unblock)
	got := <-first
	require.NoError(t, got.err)
	assert.Equal(t, "A short story", got.result.Text)
	assert.Equal(t, domain.SessionState_Ready, s.State())
}

func TestSession_ReleaseIsIdempotent(t *testing.T) {
	provider := domain.NewMockCapabilityProvider(t)
	handle := domain.NewMockCapabilityHandle(t)
	provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Ready, nil).Once()
	provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
	handle.EXPECT().Release().Return().Once()

	recorder := &transitionRecorder{}
	s := NewSession(mustConfig(t, domain.CapabilityKind_Rewriter, nil), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Rewriter: provider}), fixedTime, discardLogger(), recorder.observe)
	require.NoError(t, s.Start(context.Background()))

	s.Release()
	s.Release()

	assert.Equal(t, domain.SessionState_Destroyed, s.State())
	assert.Equal(t, 1, recorder.count(domain.SessionState_Ready, domain.SessionState_Destroyed))
	select {
	case <-s.Done():
	default:
		t.Fatal("released session must be done")
	}

	var released *domain.SessionReleasedErr
	assert.ErrorAs(t, s.AwaitReady(context.Background()), &released)
}

func TestSession_ReleaseBeforeStart(t *testing.T) {
	s := NewSession(mustConfig(t, domain.CapabilityKind_Writer, nil), NewProbe(domain.ProviderCatalogMap{}), fixedTime, discardLogger(), nil)
	s.Release()

	var released *domain.SessionReleasedErr
	assert.ErrorAs(t, s.Start(context.Background()), &released)
	assert.Equal(t, domain.SessionState_Destroyed, s.State())
}

func TestSession_ReleaseDuringInvoke(t *testing.T) {
	provider := domain.NewMockCapabilityProvider(t)
	handle := domain.NewMockCapabilityHandle(t)
	started := make(chan struct{})

	provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Ready, nil).Once()
	provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
	handle.EXPECT().Invoke(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.InvocationRequest) (domain.InvocationResult, error) {
			close(started)
			<-ctx.Done()
			return domain.InvocationResult{}, ctx.Err()
		}).
		Once()
	handle.EXPECT().Release().Return().Once()

	s := NewSession(mustConfig(t, domain.CapabilityKind_Summarizer, nil), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Summarizer: provider}), fixedTime, discardLogger(), nil)
	require.NoError(t, s.Start(context.Background()))

	errCh := make(chan error)
	go func() {
		_, err := s.Invoke(context.Background(), domain.InvocationRequest{Input: "text"})
		errCh <- err
	}()

	<-started
	s.Release()

	var released *domain.SessionReleasedErr
	assert.ErrorAs(t, <-errCh, &released)
	assert.Equal(t, domain.SessionState_Destroyed, s.State())
}

func TestSession_SummarizerDownloadPhase(t *testing.T) {
	provider := domain.NewMockCapabilityProvider(t)
	handle := domain.NewMockCapabilityHandle(t)
	progress := make(chan domain.DownloadProgress)
	ready := make(chan struct{})

	provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Downloadable, nil).Once()
	provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
	handle.EXPECT().DownloadProgress().Return(progressChan(progress)).Once()
	handle.EXPECT().Ready(mock.Anything).
		RunAndReturn(func(context.Context) error {
			<-ready
			return nil
		}).
		Once()

	recorder := &transitionRecorder{}
	s := NewSession(mustConfig(t, domain.CapabilityKind_Summarizer, nil), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Summarizer: provider}), fixedTime, discardLogger(), recorder.observe)
	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, domain.SessionState_Downloading, s.State())
	assert.False(t, s.Snapshot().IsDownloading)

	progress <- domain.DownloadProgress{Loaded: 0, Total: 100}
	require.Eventually(t, func() bool {
		return s.Snapshot().Progress == domain.DownloadProgress{Loaded: 0, Total: 100}
	}, time.Second, time.Millisecond)
	assert.True(t, s.Snapshot().IsDownloading)

	progress <- domain.DownloadProgress{Loaded: 100, Total: 100}
	require.Eventually(t, func() bool {
		return s.Snapshot().Progress == domain.DownloadProgress{Loaded: 100, Total: 100}
	}, time.Second, time.Millisecond)
	assert.False(t, s.Snapshot().IsDownloading)

	close(progress)
	close(ready)
	require.NoError(t, s.AwaitReady(context.Background()))

	assert.Equal(t, domain.SessionState_Ready, s.State())
	assert.Equal(t, 1, recorder.count(domain.SessionState_Downloading, domain.SessionState_Ready))
	assert.Equal(t, 1, recorder.count(domain.SessionState_Probing, domain.SessionState_Downloading))
	assert.True(t, s.Progress().Finished())
}

func TestSession_DownloadFailure(t *testing.T) {
	provider := domain.NewMockCapabilityProvider(t)
	handle := domain.NewMockCapabilityHandle(t)
	progress := make(chan domain.DownloadProgress)
	close(progress)

	provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Downloadable, nil).Once()
	provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
	handle.EXPECT().DownloadProgress().Return(progressChan(progress)).Once()
	handle.EXPECT().Ready(mock.Anything).Return(errors.New("pull failed: manifest unknown")).Once()
	handle.EXPECT().Release().Return().Once()

	s := NewSession(mustConfig(t, domain.CapabilityKind_Summarizer, nil), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Summarizer: provider}), fixedTime, discardLogger(), nil)
	require.NoError(t, s.Start(context.Background()))

	err := s.AwaitReady(context.Background())
	var failed *domain.ProviderInvocationFailedErr
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, domain.SessionState_Unavailable, s.State())

	// The handle was already released by the failure.
	s.Release()
}

func TestSession_ReleaseDuringDownload(t *testing.T) {
	provider := domain.NewMockCapabilityProvider(t)
	handle := domain.NewMockCapabilityHandle(t)
	progress := make(chan domain.DownloadProgress)

	provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Downloadable, nil).Once()
	provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()
	handle.EXPECT().DownloadProgress().Return(progressChan(progress)).Once()
	handle.EXPECT().Release().Return().Once()

	s := NewSession(mustConfig(t, domain.CapabilityKind_Summarizer, nil), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Summarizer: provider}), fixedTime, discardLogger(), nil)
	require.NoError(t, s.Start(context.Background()))
	progress <- domain.DownloadProgress{Loaded: 10, Total: 100}

	awaited := make(chan error)
	go func() { awaited <- s.AwaitReady(context.Background()) }()

	s.Release()

	var released *domain.SessionReleasedErr
	assert.ErrorAs(t, <-awaited, &released)
	assert.Equal(t, domain.SessionState_Destroyed, s.State())
	assert.False(t, s.Snapshot().IsDownloading)
}

// callLog is a CapabilityHandle that records its calls. Ready blocks until
// the session lifetime is cancelled.
type callLog struct {
	mu       sync.Mutex
	calls    []string
	progress chan domain.DownloadProgress
}

func (h *callLog) record(call string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, call)
}

func (h *callLog) Calls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.calls...)
}

func (h *callLog) DownloadProgress() <-chan domain.DownloadProgress {
	h.record("DownloadProgress")
	return h.progress
}

func (h *callLog) Ready(ctx context.Context) error {
	h.record("Ready")
	<-ctx.Done()
	h.record("ReadyReturned")
	return ctx.Err()
}

func (h *callLog) Invoke(context.Context, domain.InvocationRequest) (domain.InvocationResult, error) {
	h.record("Invoke")
	return domain.InvocationResult{}, nil
}

func (h *callLog) Release() {
	h.record("Release")
}

func TestSession_ReleaseStopsDownloadBeforeHandleRelease(t *testing.T) {
	tests := map[string]struct {
		closeProgress bool
		expectedCalls []string
	}{
		"while-reporting-progress": {
			expectedCalls: []string{"DownloadProgress", "Release"},
		},
		"while-awaiting-readiness": {
			closeProgress: true,
			expectedCalls: []string{"DownloadProgress", "Ready", "ReadyReturned", "Release"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			handle := &callLog{progress: make(chan domain.DownloadProgress)}
			provider := domain.NewMockCapabilityProvider(t)
			provider.EXPECT().Availability(mock.Anything, mock.Anything).Return(domain.AvailabilityStatus_Downloadable, nil).Once()
			provider.EXPECT().CreateHandle(mock.Anything, mock.Anything).Return(handle, nil).Once()

			s := NewSession(mustConfig(t, domain.CapabilityKind_Summarizer, nil), NewProbe(domain.ProviderCatalogMap{domain.CapabilityKind_Summarizer: provider}), fixedTime, discardLogger(), nil)
			require.NoError(t, s.Start(context.Background()))
			assert.Equal(t, []string{"DownloadProgress"}, handle.Calls())

			if tt.closeProgress {
				close(handle.progress)
				require.Eventually(t, func() bool {
					return len(handle.Calls()) == 2
				}, time.Second, time.Millisecond)
			}

			s.Release()

			assert.Equal(t, tt.expectedCalls, handle.Calls())
			assert.Equal(t, domain.SessionState_Destroyed, s.State())
		})
	}
}

func TestSession_AwaitReadyContextDone(t *testing.T) {
	s := NewSession(mustConfig(t, domain.CapabilityKind_Writer, nil), NewProbe(domain.ProviderCatalogMap{}), fixedTime, discardLogger(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.AwaitReady(ctx), context.DeadlineExceeded)
}
