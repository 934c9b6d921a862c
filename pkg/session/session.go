// Package session keeps one identifier panel per browser session.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shamikhz/UUID-Generator/internal/id"
	"github.com/shamikhz/UUID-Generator/pkg/panel"
)

// DefaultTTL is how long a session lives without activity.
const DefaultTTL = 30 * time.Minute

// DefaultMaxSessions caps the number of live sessions.
const DefaultMaxSessions = 10000

// DefaultSweepInterval is how often expired sessions are removed.
const DefaultSweepInterval = 1 * time.Minute

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

type entry struct {
	mu       sync.Mutex // serialises panel events
	panel    *panel.Panel
	lastSeen time.Time // guarded by Store.mu
}

// Store maps session IDs to panels.
type Store struct {
	newPanel func() *panel.Panel
	newID    id.Provider
	ttl      time.Duration
	max      int
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the idle lifetime. Non-positive values keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxSessions sets the session cap. Non-positive values keep the default.
func WithMaxSessions(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.max = n
		}
	}
}

// WithSweepInterval sets how often Run removes expired sessions.
func WithSweepInterval(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithIDProvider sets the session ID source.
func WithIDProvider(p id.Provider) Option {
	return func(s *Store) {
		if p != nil {
			s.newID = p
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a Store whose sessions get panels from newPanel.
func NewStore(newPanel func() *panel.Panel, opts ...Option) *Store {
	if newPanel == nil {
		newPanel = func() *panel.Panel { return panel.New(nil) }
	}
	s := &Store{
		newPanel: newPanel,
		newID:    id.UUID,
		ttl:      DefaultTTL,
		max:      DefaultMaxSessions,
		interval: DefaultSweepInterval,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new session with an unset panel and returns its ID.
func (s *Store) Create() string {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.max {
		s.evictOldestLocked()
	}
	sid := s.newID()
	s.sessions[sid] = &entry{panel: s.newPanel(), lastSeen: now}
	return sid
}

// Ensure returns sid if it names a live session, otherwise a new session ID.
// created reports whether a new session was made.
func (s *Store) Ensure(sid string) (string, bool) {
	if sid != "" {
		if _, ok := s.touch(sid); ok {
			return sid, false
		}
	}
	return s.Create(), true
}

// Do runs fn against the session's panel. Calls for the same session are
// serialised.
func (s *Store) Do(sid string, fn func(*panel.Panel) error) error {
	e, ok := s.touch(sid)
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.panel)
}

// State returns a snapshot of the session's panel.
func (s *Store) State(sid string) (panel.State, error) {
	var st panel.State
	err := s.Do(sid, func(p *panel.Panel) error {
		st = p.State()
		return nil
	})
	return st, err
}

// Len returns the number of live sessions, expired ones included until the
// next sweep.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) touch(sid string) (*entry, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sid]
	if !ok {
		return nil, false
	}
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.sessions, sid)
		return nil, false
	}
	e.lastSeen = now
	return e, true
}

func (s *Store) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for sid, e := range s.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = sid, e.lastSeen
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}

// Sweep removes expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for sid, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, sid)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions until ctx is cancelled.
func (s *Store) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-ctx.Done():
			return nil
		}
	}
}
