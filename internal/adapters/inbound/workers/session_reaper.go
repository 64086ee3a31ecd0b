package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/usecases"
)

// SessionReaper is a runnable that periodically releases idle sessions.
type SessionReaper struct {
	ReapIdleSessions    usecases.ReapIdleSessions `resolve:""`
	Logger              *log.Logger               `resolve:""`
	Interval            time.Duration             `config:"SESSION_REAP_INTERVAL" default:"1m"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic reaping of idle sessions.
func (sr SessionReaper) Run(ctx context.Context) error {
	sr.Logger.Println("SessionReaper: running...")
	ticker := time.NewTicker(sr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			count, err := sr.ReapIdleSessions.Execute(ctx)
			if err != nil {
				sr.Logger.Printf("SessionReaper: error reaping idle sessions: %v", err)
			} else if count > 0 {
				sr.Logger.Printf("SessionReaper: released %d idle sessions", count)
			}
			if sr.workerExecutionChan != nil {
				sr.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			sr.Logger.Println("SessionReaper: stopping...")
			return nil
		}
	}
}
