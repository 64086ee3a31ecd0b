package capability

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
)

// ErrInvalidProgress is returned when a progress event breaks the ordering of a download phase.
var ErrInvalidProgress = errors.New("invalid download progress")

// ProgressTracker accumulates the download progress of one session.
// It is not shared across sessions.
type ProgressTracker struct {
	mu       sync.Mutex
	events   []domain.DownloadProgress
	finished bool
	changed  chan struct{}
}

// NewProgressTracker creates an empty tracker.
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{
		changed: make(chan struct{}),
	}
}

// Record appends a progress event. Events that decrease Loaded, change Total
// within the phase or overflow Total are rejected.
func (t *ProgressTracker) Record(p domain.DownloadProgress) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return fmt.Errorf("%w: download phase already finished", ErrInvalidProgress)
	}
	if p.Loaded < 0 || p.Total < 0 || p.Loaded > p.Total {
		return fmt.Errorf("%w: loaded %d of %d", ErrInvalidProgress, p.Loaded, p.Total)
	}
	if n := len(t.events); n > 0 {
		last := t.events[n-1]
		if p.Total != last.Total {
			return fmt.Errorf("%w: total changed from %d to %d", ErrInvalidProgress, last.Total, p.Total)
		}
		if p.Loaded < last.Loaded {
			return fmt.Errorf("%w: loaded went back from %d to %d", ErrInvalidProgress, last.Loaded, p.Loaded)
		}
	}

	t.events = append(t.events, p)
	t.broadcast()
	return nil
}

// Finish marks the end of the download phase. It is idempotent.
func (t *ProgressTracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		return
	}
	t.finished = true
	t.broadcast()
}

// broadcast wakes every Events consumer. Callers hold t.mu.
func (t *ProgressTracker) broadcast() {
	close(t.changed)
	t.changed = make(chan struct{})
}

// Latest returns the last recorded event, or {0,0} when nothing was recorded.
func (t *ProgressTracker) Latest() domain.DownloadProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.events) == 0 {
		return domain.DownloadProgress{}
	}
	return t.events[len(t.events)-1]
}

// IsDownloading reports whether a download phase is in progress.
func (t *ProgressTracker) IsDownloading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished || len(t.events) == 0 {
		return false
	}
	return !t.events[len(t.events)-1].Complete()
}

// Finished reports whether the readiness marker was recorded.
func (t *ProgressTracker) Finished() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finished
}

// Events returns a sequence that replays every recorded event from the start,
// then follows new ones until the download phase finishes or ctx is done.
// Each call starts a new iteration.
func (t *ProgressTracker) Events(ctx context.Context) iter.Seq[domain.DownloadProgress] {
	return func(yield func(domain.DownloadProgress) bool) {
		next := 0
		for {
			t.mu.Lock()
			pending := t.events[next:]
			finished := t.finished
			changed := t.changed
			t.mu.Unlock()

			for _, p := range pending {
				if !yield(p) {
					return
				}
				next++
			}
			if finished {
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-changed:
			}
		}
	}
}
