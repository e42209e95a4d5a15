package game

import (
	"context"
	"time"
)

// Runner drives a session's one-second ticks from wall-clock time.
// Tests bypass it and call Tick directly.
type Runner struct {
	session  *Session
	interval time.Duration
}

// NewRunner creates a runner ticking the session once per second.
func NewRunner(session *Session) *Runner {
	return &Runner{session: session, interval: time.Second}
}

// Run ticks the session until the context is cancelled. Ticks that
// arrive after the session has ended are no-ops inside the session, so
// the runner can keep running across resets.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.session.Tick()
		}
	}
}
