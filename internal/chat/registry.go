package chat

import (
	"sync"
	"time"

	"maitri/internal/counsel"
)

// Registry hands out one Session per browser session ID.
type Registry struct {
	resolver *counsel.Resolver
	catalog  *counsel.Catalog
	opts     Options

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry. Sessions it creates share resolver,
// catalog and opts.
func NewRegistry(resolver *counsel.Resolver, catalog *counsel.Catalog, opts Options) *Registry {
	return &Registry{
		resolver: resolver,
		catalog:  catalog,
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating it on first use.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		return s
	}
	s := NewSession(r.resolver, r.catalog, r.opts)
	r.sessions[id] = s
	return s
}

// Lookup returns the session for id without creating one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Reap closes and forgets sessions idle since before now-maxIdle.
// It returns how many were removed.
func (r *Registry) Reap(now time.Time, maxIdle time.Duration) int {
	cutoff := now.Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.LastActive().Before(cutoff) {
			s.Close()
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Close closes every session.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		s.Close()
		delete(r.sessions, id)
	}
}
