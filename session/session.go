package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oticaisis/storefront/compare"
)

// Session is one browser's server-side state: when it started, whether the
// newsletter popup already fired, and the comparison set. Lock mu before
// touching the mutable fields.
type Session struct {
	ID        string
	StartedAt time.Time

	mu         sync.Mutex
	lastSeen   time.Time
	PopupShown bool
	Compare    compare.List
}

// Do runs fn with the session locked.
func (s *Session) Do(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// Age is how long the session has existed.
func (s *Session) Age(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// Manager tracks live sessions and evicts the ones idle past the TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	m := &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go m.janitor()
	return m
}

// Start creates a new session.
func (m *Manager) Start() *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		StartedAt: now,
		lastSeen:  now,
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with that ID if it is still alive, marking it seen.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
	return s, true
}

// GetOrStart resolves an existing session or starts a fresh one when the ID
// is empty or expired.
func (m *Manager) GetOrStart(id string) *Session {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s
		}
	}
	return m.Start()
}

// Len reports how many sessions are alive.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Stop halts the janitor. Sessions stay readable afterwards.
func (m *Manager) Stop() {
	close(m.stop)
	<-m.done
}

func (m *Manager) janitor() {
	defer close(m.done)
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case now := <-ticker.C:
			m.evict(now)
		}
	}
}

func (m *Manager) evict(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastSeen)
		s.mu.Unlock()
		if idle > m.ttl {
			delete(m.sessions, id)
		}
	}
}
