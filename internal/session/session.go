// Package session gives every visitor an isolated, mounted page and reaps
// pages that have gone idle.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/niranjandahal/portfolio/internal/page"
)

// CookieName is the cookie carrying the session id.
const CookieName = "portfolio_session"

// DefaultTTL is how long a page survives without events.
const DefaultTTL = 30 * time.Minute

// DefaultMaxSessions bounds the number of mounted pages.
const DefaultMaxSessions = 1000

// Session owns one visitor's page. Events are applied one at a time.
type Session struct {
	ID string

	mu   sync.Mutex
	page *page.Page
	seen time.Time
}

// Do runs fn with exclusive access to the page.
func (s *Session) Do(fn func(p *page.Page)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.page)
}

// Updates delivers showcase rotations. Safe without Do.
func (s *Session) Updates() <-chan int { return s.page.Hero.Updates() }

// Done is closed when the page is unmounted. Safe without Do.
func (s *Session) Done() <-chan struct{} { return s.page.Done() }

// Store tracks live sessions.
type Store struct {
	NewPage func() *page.Page
	TTL     time.Duration
	// Max is the most sessions kept at once. Past it, the least recently
	// seen session is unmounted to make room.
	Max int
	Now func() time.Time

	log      *zap.Logger
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore returns a store that builds pages with newPage.
func NewStore(newPage func() *page.Page, ttl time.Duration, log *zap.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		NewPage:  newPage,
		TTL:      ttl,
		Max:      DefaultMaxSessions,
		Now:      time.Now,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Get returns the live session for id and marks it as seen.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if ok {
		s.seen = st.Now()
	}
	return s, ok
}

// Acquire returns the session for id, mounting a fresh page under a new id
// when it is unknown. created reports whether a new session was made.
func (st *Store) Acquire(id string) (s *Session, created bool) {
	if s, ok := st.Get(id); ok {
		return s, false
	}

	now := st.Now()
	p := st.NewPage()
	p.Mount(now)
	s = &Session{ID: uuid.NewString(), page: p, seen: now}

	st.mu.Lock()
	st.sessions[s.ID] = s
	var evicted []*Session
	for st.Max > 0 && len(st.sessions) > st.Max {
		oldest := st.oldestLocked(s.ID)
		if oldest == nil {
			break
		}
		delete(st.sessions, oldest.ID)
		evicted = append(evicted, oldest)
	}
	n := len(st.sessions)
	st.mu.Unlock()

	for _, e := range evicted {
		e.Do(func(p *page.Page) { p.Unmount() })
		st.log.Debug("Session evicted", zap.String("session", e.ID))
	}
	st.log.Debug("Session created", zap.String("session", s.ID), zap.Int("live", n))
	return s, true
}

// oldestLocked returns the least recently seen session other than skip.
func (st *Store) oldestLocked(skip string) *Session {
	var oldest *Session
	for id, s := range st.sessions {
		if id == skip {
			continue
		}
		if oldest == nil || s.seen.Before(oldest.seen) {
			oldest = s
		}
	}
	return oldest
}

// Len is the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Reap unmounts every session idle for longer than the TTL and returns how
// many were removed.
func (st *Store) Reap() int {
	cutoff := st.Now().Add(-st.TTL)

	st.mu.Lock()
	var expired []*Session
	for id, s := range st.sessions {
		if s.seen.Before(cutoff) {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.Do(func(p *page.Page) { p.Unmount() })
		st.log.Debug("Session reaped", zap.String("session", s.ID))
	}
	return len(expired)
}

// Run reaps on every interval until ctx is done, then closes the store.
func (st *Store) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = st.TTL / 2
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			st.Close()
			return nil
		case <-t.C:
			if n := st.Reap(); n > 0 {
				st.log.Info("Reaped idle sessions", zap.Int("count", n), zap.Int("live", st.Len()))
			}
		}
	}
}

// Close unmounts every session.
func (st *Store) Close() {
	st.mu.Lock()
	all := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()

	for _, s := range all {
		s.Do(func(p *page.Page) { p.Unmount() })
	}
	if len(all) > 0 {
		st.log.Info("Closed sessions", zap.Int("count", len(all)))
	}
}
