package capability

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// ErrRegistryClosed is returned when a session is requested after the registry was closed.
var ErrRegistryClosed = errors.New("capability registry is closed")

// releasedCapacity bounds how many released session ids are remembered.
const releasedCapacity = 1024

// lifecycleEvents maps the transitions that are published as session events.
var lifecycleEvents = map[domain.SessionState]domain.EventType{
	domain.SessionState_Probing:     domain.EventType_SESSION_ACQUIRED,
	domain.SessionState_Ready:       domain.EventType_SESSION_READY,
	domain.SessionState_Unavailable: domain.EventType_SESSION_UNAVAILABLE,
	domain.SessionState_Destroyed:   domain.EventType_SESSION_RELEASED,
}

// Registry owns the live sessions of one consumer scope. At most one live
// session exists per value-equal (kind, config) pair.
type Registry struct {
	probe        Probe
	timeProvider domain.CurrentTimeProvider
	publisher    domain.SessionEventPublisher
	logger       *log.Logger

	group singleflight.Group

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	byKey    map[string]*Session
	// lastActive is the last time each live session became ready.
	lastActive map[uuid.UUID]time.Time
	// released remembers destroyed session ids, oldest first in releasedOrder.
	released      map[uuid.UUID]struct{}
	releasedOrder []uuid.UUID
	closed        bool
}

// NewRegistry creates a Registry. publisher may be nil.
func NewRegistry(
	catalog domain.ProviderCatalog,
	timeProvider domain.CurrentTimeProvider,
	publisher domain.SessionEventPublisher,
	logger *log.Logger,
) *Registry {
	return &Registry{
		probe:        NewProbe(catalog),
		timeProvider: timeProvider,
		publisher:    publisher,
		logger:       logger,
		sessions:     make(map[uuid.UUID]*Session),
		byKey:        make(map[string]*Session),
		lastActive:   make(map[uuid.UUID]time.Time),
		released:     make(map[uuid.UUID]struct{}),
	}
}

// Probe returns the availability of a kind and its options without creating a session.
func (r *Registry) Probe(ctx context.Context, kind domain.CapabilityKind, options map[string]string) (domain.AvailabilityStatus, error) {
	cfg, err := domain.NewCapabilityConfig(kind, options)
	if err != nil {
		return domain.AvailabilityStatus_Unavailable, err
	}
	return r.probe.Probe(ctx, cfg)
}

// GetOrCreateSession returns the live session of an equal configuration or
// creates and starts a new one. Options are validated before any provider call.
// When the provider is absent or rejects the configuration, no handle is
// created and nothing is kept.
func (r *Registry) GetOrCreateSession(ctx context.Context, kind domain.CapabilityKind, options map[string]string) (*Session, error) {
	cfg, err := domain.NewCapabilityConfig(kind, options)
	if err != nil {
		return nil, err
	}

	key := cfg.Key()
	if s, ok := r.lookupKey(key); ok {
		return s, nil
	}

	// Waiters share one creation, so it must not depend on the first caller
	// staying around.
	createCtx := context.WithoutCancel(ctx)
	ch := r.group.DoChan(key, func() (any, error) {
		if s, ok := r.lookupKey(key); ok {
			return s, nil
		}
		return r.createSession(createCtx, cfg)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Session), nil
	}
}

func (r *Registry) createSession(ctx context.Context, cfg domain.CapabilityConfig) (*Session, error) {
	r.mu.RLock()
	closed := r.closed
	r.mu.RUnlock()
	if closed {
		return nil, ErrRegistryClosed
	}

	s := NewSession(cfg, r.probe, r.timeProvider.Now(), r.logger, r.onTransition)
	if err := s.Start(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		s.Release()
		return nil, ErrRegistryClosed
	}
	r.sessions[s.ID()] = s
	r.byKey[cfg.Key()] = s
	r.lastActive[s.ID()] = r.timeProvider.Now()
	r.mu.Unlock()

	// A download that failed before the insert could not be forgotten then.
	if s.State().IsTerminal() {
		r.forget(s.ID())
	}

	r.logger.Printf("CapabilityRegistry: session %s acquired for %s", s.ID(), cfg.Key())
	return s, nil
}

func (r *Registry) lookupKey(key string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byKey[key]
	if !ok || s.State().IsTerminal() {
		return nil, false
	}
	return s, true
}

// Lookup returns the live session with the given id. A recently released id
// fails with SessionReleasedErr.
func (r *Registry) Lookup(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if ok {
		return s, nil
	}
	if _, ok := r.released[id]; ok {
		return nil, domain.NewSessionReleasedErr()
	}
	return nil, domain.NewNotFoundErr(fmt.Sprintf("session %s not found", id))
}

// Release releases the session with the given id and forgets it. Releasing an
// already released id is a no-op.
func (r *Registry) Release(id uuid.UUID) error {
	s, err := r.Lookup(id)
	var released *domain.SessionReleasedErr
	if errors.As(err, &released) {
		return nil
	}
	if err != nil {
		return err
	}
	s.Release()
	r.forget(s.ID())
	return nil
}

// Sessions returns the live sessions ordered by creation time.
func (r *Registry) Sessions() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		list = append(list, s)
	}
	slices.SortFunc(list, func(a, b *Session) int {
		return a.createdAt.Compare(b.createdAt)
	})
	return list
}

// Close ends the consumer scope: every live session is released and no new
// session can be created.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	live := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		live = append(live, s)
	}
	r.mu.Unlock()

	for _, s := range live {
		s.Release()
		r.forget(s.ID())
	}
}

func (r *Registry) forget(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return
	}
	delete(r.sessions, id)
	delete(r.lastActive, id)
	key := s.Config().Key()
	if current, ok := r.byKey[key]; ok && current == s {
		delete(r.byKey, key)
	}
	if s.State() == domain.SessionState_Destroyed {
		r.rememberReleasedLocked(id)
	}
}

func (r *Registry) rememberReleasedLocked(id uuid.UUID) {
	if _, ok := r.released[id]; ok {
		return
	}
	if len(r.releasedOrder) == releasedCapacity {
		delete(r.released, r.releasedOrder[0])
		r.releasedOrder = r.releasedOrder[1:]
	}
	r.released[id] = struct{}{}
	r.releasedOrder = append(r.releasedOrder, id)
}

// ReapIdle releases the ready sessions that have not been used for at least
// idleTimeout and returns their ids. Sessions that are downloading or
// invoking are never reaped.
func (r *Registry) ReapIdle(idleTimeout time.Duration) []uuid.UUID {
	now := r.timeProvider.Now()

	r.mu.RLock()
	var idle []*Session
	for id, s := range r.sessions {
		if s.State() == domain.SessionState_Ready && now.Sub(r.lastActive[id]) >= idleTimeout {
			idle = append(idle, s)
		}
	}
	r.mu.RUnlock()

	reaped := make([]uuid.UUID, 0, len(idle))
	for _, s := range idle {
		s.Release()
		r.forget(s.ID())
		reaped = append(reaped, s.ID())
		r.logger.Printf("CapabilityRegistry: session %s released after %s idle", s.ID(), idleTimeout)
	}
	return reaped
}

func (r *Registry) touch(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; ok {
		r.lastActive[id] = r.timeProvider.Now()
	}
}

func (r *Registry) onTransition(ctx context.Context, t Transition) {
	RecordSessionTransition(ctx, t)
	if t.To.IsTerminal() {
		r.forget(t.Snapshot.ID)
	}
	if t.To == domain.SessionState_Ready {
		r.touch(t.Snapshot.ID)
	}

	eventType, ok := lifecycleEvents[t.To]
	if !ok || (t.To == domain.SessionState_Ready && t.From == domain.SessionState_Invoking) {
		return
	}
	if t.To == domain.SessionState_Unavailable {
		r.logger.Printf("CapabilityRegistry: session %s is unavailable: %v", t.Snapshot.ID, t.Snapshot.Err)
	}
	r.publish(ctx, eventType, t.Snapshot, t.ConfigKey)
}

func (r *Registry) publish(ctx context.Context, eventType domain.EventType, snapshot domain.SessionSnapshot, configKey string) {
	if r.publisher == nil {
		return
	}
	event := domain.SessionEvent{
		Type:      eventType,
		SessionID: snapshot.ID,
		Kind:      snapshot.Kind,
		ConfigKey: configKey,
		State:     snapshot.State,
		CreatedAt: r.timeProvider.Now(),
	}
	if err := r.publisher.PublishSessionEvent(ctx, event); err != nil {
		r.logger.Printf("CapabilityRegistry: failed to publish %s for session %s: %v", eventType, snapshot.ID, err)
	}
}
