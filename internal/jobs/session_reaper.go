package jobs

import (
	"context"
	"log"
	"time"
)

// Reaper drops sessions idle since before a cutoff and returns how many went.
type Reaper interface {
	Reap(now time.Time, maxIdle time.Duration) int
}

// SessionReaper periodically closes chat sessions nobody has touched for a while.
type SessionReaper struct {
	sessions Reaper
	interval time.Duration
	maxIdle  time.Duration
	now      func() time.Time
}

// NewSessionReaper creates a new session reaper.
func NewSessionReaper(sessions Reaper, interval, maxIdle time.Duration) *SessionReaper {
	return &SessionReaper{
		sessions: sessions,
		interval: interval,
		maxIdle:  maxIdle,
		now:      time.Now,
	}
}

// Start runs the reap loop until ctx is canceled.
func (r *SessionReaper) Start(ctx context.Context) {
	log.Printf("Session reaper started (interval: %v, maxIdle: %v)", r.interval, r.maxIdle)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Session reaper stopped")
			return
		case <-ticker.C:
			r.reapOnce()
		}
	}
}

func (r *SessionReaper) reapOnce() int {
	n := r.sessions.Reap(r.now(), r.maxIdle)
	if n > 0 {
		log.Printf("Session reaper: dropped %d idle chat sessions", n)
	}
	return n
}
