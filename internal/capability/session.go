package capability

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/google/uuid"
)

// Transition is one state change of a session.
type Transition struct {
	From      domain.SessionState
	To        domain.SessionState
	ConfigKey string
	Snapshot  domain.SessionSnapshot
}

// TransitionObserver is called after every state change of a session.
type TransitionObserver func(ctx context.Context, t Transition)

// Session owns one provider handle for one fixed configuration and drives it
// through the session lifecycle:
//
//	uninitialized -> probing -> downloading -> ready <-> invoking
//	probing -> unavailable
//	any non-terminal state -> destroyed
type Session struct {
	id        uuid.UUID
	cfg       domain.CapabilityConfig
	probe     Probe
	createdAt time.Time
	tracker   *ProgressTracker
	logger    *log.Logger
	observer  TransitionObserver

	// lifetime is cancelled by Release.
	lifetime context.Context
	cancel   context.CancelFunc

	mu      sync.Mutex
	state   domain.SessionState
	err     error
	handle  domain.CapabilityHandle
	settled chan struct{}
	done    chan struct{}
	// downloaded is closed when the download goroutine exits; nil when no
	// download was started.
	downloaded chan struct{}

	releaseOnce sync.Once
}

// NewSession creates an uninitialized session for cfg. Start must be called to probe the provider.
func NewSession(cfg domain.CapabilityConfig, probe Probe, createdAt time.Time, logger *log.Logger, observer TransitionObserver) *Session {
	lifetime, cancel := context.WithCancel(context.Background())
	return &Session{
		id:        uuid.New(),
		cfg:       cfg,
		probe:     probe,
		createdAt: createdAt,
		tracker:   NewProgressTracker(),
		logger:    logger,
		observer:  observer,
		lifetime:  lifetime,
		cancel:    cancel,
		state:     domain.SessionState_Uninitialized,
		settled:   make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Kind returns the capability kind of the session.
func (s *Session) Kind() domain.CapabilityKind { return s.cfg.Kind() }

// Config returns the configuration the session was created with.
func (s *Session) Config() domain.CapabilityConfig { return s.cfg }

// Progress returns the download progress tracker of the session.
func (s *Session) Progress() *ProgressTracker { return s.tracker }

// Done is closed when the session reaches a terminal state.
func (s *Session) Done() <-chan struct{} { return s.done }

// State returns the current lifecycle state.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a point-in-time readout of the session.
func (s *Session) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() domain.SessionSnapshot {
	return domain.SessionSnapshot{
		ID:            s.id,
		Kind:          s.cfg.Kind(),
		Options:       s.cfg.Options(),
		State:         s.state,
		Progress:      s.tracker.Latest(),
		IsDownloading: s.state == domain.SessionState_Downloading && s.tracker.IsDownloading(),
		Err:           s.err,
		CreatedAt:     s.createdAt,
	}
}

// Start probes the provider and creates the handle. A ready configuration
// leaves the session ready; a downloadable one leaves it downloading while the
// download phase continues in the background. An unavailable configuration
// or an absent provider leaves the session unavailable without a handle.
func (s *Session) Start(ctx context.Context) error {
	if !s.transition(ctx, domain.SessionState_Uninitialized, domain.SessionState_Probing, nil) {
		if s.State() == domain.SessionState_Destroyed {
			return domain.NewSessionReleasedErr()
		}
		return fmt.Errorf("session %s was already started", s.id)
	}

	status, err := s.probe.Probe(ctx, s.cfg)
	if err == nil && status == domain.AvailabilityStatus_Unavailable {
		err = domain.NewUnavailableErr(s.cfg.Kind())
	}
	if err != nil {
		s.fail(ctx, domain.SessionState_Probing, err)
		return err
	}

	provider, err := s.probe.Provider(s.cfg.Kind())
	if err != nil {
		s.fail(ctx, domain.SessionState_Probing, err)
		return err
	}

	handle, err := provider.CreateHandle(ctx, s.cfg)
	if err != nil {
		err = asProviderFailure(err)
		s.fail(ctx, domain.SessionState_Probing, err)
		return err
	}

	next := domain.SessionState_Ready
	if status == domain.AvailabilityStatus_Downloadable {
		next = domain.SessionState_Downloading
	}

	s.mu.Lock()
	if s.state != domain.SessionState_Probing {
		s.mu.Unlock()
		// Released while the handle was being created.
		handle.Release()
		return domain.NewSessionReleasedErr()
	}
	s.handle = handle
	if next == domain.SessionState_Downloading {
		s.downloaded = make(chan struct{})
	}
	downloaded := s.downloaded
	s.mu.Unlock()

	if next == domain.SessionState_Ready {
		s.tracker.Finish()
		s.transition(ctx, domain.SessionState_Probing, domain.SessionState_Ready, nil)
		return nil
	}

	progress := handle.DownloadProgress()
	s.transition(ctx, domain.SessionState_Probing, domain.SessionState_Downloading, nil)
	go s.awaitDownload(handle, progress, downloaded)
	return nil
}

// awaitDownload forwards the download progress of the handle to the tracker,
// then waits for the readiness signal. It closes downloaded on exit.
func (s *Session) awaitDownload(handle domain.CapabilityHandle, progress <-chan domain.DownloadProgress, downloaded chan struct{}) {
	defer close(downloaded)
	ctx := s.lifetime
	for progress != nil {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-progress:
			if !ok {
				progress = nil
				continue
			}
			if err := s.tracker.Record(p); err != nil {
				s.logger.Printf("CapabilitySession: session %s dropped progress event: %v", s.id, err)
			}
		}
	}

	if err := handle.Ready(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.fail(ctx, domain.SessionState_Downloading, asProviderFailure(err))
		return
	}

	s.tracker.Finish()
	s.transition(ctx, domain.SessionState_Downloading, domain.SessionState_Ready, nil)
}

// AwaitReady blocks until the session leaves the probing and downloading states.
// It returns the permanent error of a session that did not become ready.
func (s *Session) AwaitReady(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.settled:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case domain.SessionState_Ready, domain.SessionState_Invoking:
		return nil
	case domain.SessionState_Destroyed:
		return domain.NewSessionReleasedErr()
	default:
		return s.err
	}
}

// Invoke forwards one request to the provider handle. Only a ready session
// accepts it; a concurrent call fails with SessionBusyErr instead of queuing.
func (s *Session) Invoke(ctx context.Context, req domain.InvocationRequest) (domain.InvocationResult, error) {
	s.mu.Lock()
	switch s.state {
	case domain.SessionState_Ready:
	case domain.SessionState_Invoking:
		s.mu.Unlock()
		return domain.InvocationResult{}, domain.NewSessionBusyErr()
	case domain.SessionState_Destroyed:
		s.mu.Unlock()
		return domain.InvocationResult{}, domain.NewSessionReleasedErr()
	case domain.SessionState_Unavailable:
		err := s.err
		s.mu.Unlock()
		return domain.InvocationResult{}, err
	default:
		state := s.state
		s.mu.Unlock()
		return domain.InvocationResult{}, domain.NewSessionNotReadyErr(state)
	}
	s.state = domain.SessionState_Invoking
	handle := s.handle
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(ctx, domain.SessionState_Ready, snapshot)

	invokeCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.lifetime, cancel)
	defer stop()

	result, err := handle.Invoke(invokeCtx, req)

	if !s.transition(ctx, domain.SessionState_Invoking, domain.SessionState_Ready, nil) {
		// Released while the call was in flight.
		if err != nil {
			return domain.InvocationResult{}, domain.NewSessionReleasedErr()
		}
		return result, nil
	}
	if err != nil {
		if ctx.Err() != nil {
			return domain.InvocationResult{}, ctx.Err()
		}
		return domain.InvocationResult{}, asProviderFailure(err)
	}
	if result.Kind == "" {
		result.Kind = s.cfg.Kind()
	}
	return result, nil
}

// Release tears down the provider handle and destroys the session. A download
// in progress is stopped before the handle is released. Calls after the first
// are no-ops.
func (s *Session) Release() {
	s.releaseOnce.Do(func() {
		s.mu.Lock()
		from := s.state
		handle := s.handle
		downloaded := s.downloaded
		if !from.IsTerminal() {
			s.state = domain.SessionState_Destroyed
		}
		snapshot := s.snapshotLocked()
		s.closeSettledLocked()
		s.mu.Unlock()

		s.cancel()
		if downloaded != nil {
			<-downloaded
		}
		s.tracker.Finish()
		if handle != nil {
			handle.Release()
		}
		if !from.IsTerminal() {
			s.closeDone()
			s.notify(context.Background(), from, snapshot)
		}
	})
}

// transition moves the session from one state to another when it is still in from.
func (s *Session) transition(ctx context.Context, from, to domain.SessionState, err error) bool {
	s.mu.Lock()
	if s.state != from {
		s.mu.Unlock()
		return false
	}
	s.state = to
	if err != nil {
		s.err = err
	}
	if to != domain.SessionState_Probing && to != domain.SessionState_Downloading {
		s.closeSettledLocked()
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if to.IsTerminal() {
		s.closeDone()
	}
	s.notify(ctx, from, snapshot)
	return true
}

// fail moves the session to unavailable and frees whatever handle it holds.
// Waiters are woken only after the handle is released.
func (s *Session) fail(ctx context.Context, from domain.SessionState, err error) {
	s.mu.Lock()
	if s.state != from {
		s.mu.Unlock()
		return
	}
	s.state = domain.SessionState_Unavailable
	s.err = err
	handle := s.handle
	s.handle = nil
	s.mu.Unlock()

	s.cancel()
	s.tracker.Finish()
	if handle != nil {
		handle.Release()
	}

	s.mu.Lock()
	s.closeSettledLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.closeDone()
	s.notify(ctx, from, snapshot)
}

func (s *Session) closeSettledLocked() {
	select {
	case <-s.settled:
	default:
		close(s.settled)
	}
}

func (s *Session) closeDone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func (s *Session) notify(ctx context.Context, from domain.SessionState, snapshot domain.SessionSnapshot) {
	if s.observer == nil {
		return
	}
	s.observer(context.WithoutCancel(ctx), Transition{
		From:      from,
		To:        snapshot.State,
		ConfigKey: s.cfg.Key(),
		Snapshot:  snapshot,
	})
}

// asProviderFailure keeps domain errors as they are and wraps anything else
// into a ProviderInvocationFailedErr.
func asProviderFailure(err error) error {
	var failed *domain.ProviderInvocationFailedErr
	if errors.As(err, &failed) {
		return err
	}
	var released *domain.SessionReleasedErr
	if errors.As(err, &released) {
		return err
	}
	return domain.NewProviderInvocationFailedErr("ProviderError", err.Error(), err)
}
