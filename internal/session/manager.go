package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kailash19961996/Artisty/internal/cart"
	"github.com/kailash19961996/Artisty/internal/catalog"
)

const (
	defaultIdleTTL       = 2 * time.Hour
	defaultSweepInterval = 10 * time.Minute
)

// Session is one browser session's server-side state: the cart/view owner
// and the currently displayed search results that agent lookups resolve
// against. Nothing here is persisted; lifetime is the browser session.
type Session struct {
	ID string

	mu        sync.Mutex
	cart      *cart.Owner
	lastQuery string
	displayed []catalog.Artwork
	lastSeen  time.Time
}

// Cart returns the session's cart/view owner.
func (s *Session) Cart() *cart.Owner {
	return s.cart
}

// SetDisplayed records the result set currently shown to the user.
func (s *Session) SetDisplayed(query string, items []catalog.Artwork) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQuery = query
	s.displayed = items
}

// Displayed returns the currently displayed artworks.
func (s *Session) Displayed() []catalog.Artwork {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayed
}

// LastQuery returns the most recent search query shown to the user.
func (s *Session) LastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) seen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Manager is the in-memory session registry. Sessions are keyed by the
// cookie value and expire after sitting idle for the TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	sweep    time.Duration
	now      func() time.Time

	initial []catalog.Artwork
}

// NewManager creates a Manager. initial is the result set a fresh session
// starts out displaying (the first catalog page). Non-positive ttl falls
// back to two hours.
func NewManager(initial []catalog.Artwork, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultIdleTTL
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		sweep:    defaultSweepInterval,
		now:      time.Now,
		initial:  initial,
	}
}

// Get returns the session for id, creating one when id is empty or unknown.
// The returned session's ID is what the cookie should carry.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			s.touch(m.now())
			return s
		}
	}

	s := &Session{
		ID:        uuid.New().String(),
		cart:      cart.NewOwner(),
		displayed: m.initial,
		lastSeen:  m.now(),
	}
	m.sessions[s.ID] = s
	return s
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Run sweeps idle sessions until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.sweep)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := m.prune()
			if removed > 0 {
				slog.Debug("pruned idle sessions", "count", removed)
			}
		}
	}
}

func (m *Manager) prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-m.ttl)
	removed := 0
	for id, s := range m.sessions {
		if s.seen().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
