package session

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Manager serializes work per chat session and rate limits inbound messages.
// Concurrent events for the same session run one at a time; different sessions run in parallel.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*sessionLock
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

type sessionLock struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	lastUsed time.Time
}

// NewManager allows perMinute messages per session per minute, with bursts of the same size.
func NewManager(perMinute int) *Manager {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &Manager{
		sessions: make(map[string]*sessionLock),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		now:      time.Now,
	}
}

func (m *Manager) get(id string) *sessionLock {
	m.mu.Lock()
	defer m.mu.Unlock()
	sl, ok := m.sessions[id]
	if !ok {
		sl = &sessionLock{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.sessions[id] = sl
	}
	sl.lastUsed = m.now()
	return sl
}

// WithLock executes fn while holding the session's mutex.
func (m *Manager) WithLock(id string, fn func() error) error {
	sl := m.get(id)
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return fn()
}

// Allow reports whether the session may send another message now.
func (m *Manager) Allow(id string) bool {
	return m.get(id).limiter.AllowN(m.now(), 1)
}

// Cleanup drops sessions idle for longer than maxAge and returns how many were removed.
func (m *Manager) Cleanup(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, sl := range m.sessions {
		if now.Sub(sl.lastUsed) > maxAge {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
