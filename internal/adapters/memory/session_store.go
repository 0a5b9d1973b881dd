// Package memory holds in-process adapters used when Redis is disabled.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
)

// SessionStore keeps sessions in a map. Sessions do not survive a restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
	now      func() time.Time
}

// NewSessionStore creates an empty store. A nil now uses time.Now.
func NewSessionStore(now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{sessions: make(map[string]domainauth.Session), now: now}
}

func (m *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.IsExpired(m.now()) {
		return errors.New("session is expired")
	}
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return nil
}

func (m *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	if sess.IsExpired(m.now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *SessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// List returns live sessions, newest first.
func (m *SessionStore) List(_ context.Context) ([]domainauth.Session, error) {
	now := m.now()
	m.mu.RLock()
	out := make([]domainauth.Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		if !sess.IsExpired(now) {
			out = append(out, sess)
		}
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// DeleteAll empties the store.
func (m *SessionStore) DeleteAll(_ context.Context) (int, error) {
	m.mu.Lock()
	n := len(m.sessions)
	m.sessions = make(map[string]domainauth.Session)
	m.mu.Unlock()
	return n, nil
}

// Sweep drops expired sessions and returns how many were removed.
func (m *SessionStore) Sweep(_ context.Context) (int, error) {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, sess := range m.sessions {
		if sess.IsExpired(now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}

var _ ports.SessionAdmin = (*SessionStore)(nil)
