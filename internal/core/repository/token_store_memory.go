package repository

import (
	"sync"
	"time"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
)

// MemoryTokenStore is an in-memory implementation of domain.TokenStore.
// Sessions do not survive a process restart. Reads and writes are safe for
// concurrent use; every operation touches a single key.
type MemoryTokenStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemoryTokenStore creates an empty MemoryTokenStore.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		sessions: make(map[string]domain.Session),
	}
}

// Put stores the session under token, overwriting any prior mapping.
func (s *MemoryTokenStore) Put(token string, session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session
}

// Get returns the session for token. Expired entries are still returned;
// expiry policy belongs to the caller.
func (s *MemoryTokenStore) Get(token string) (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	return session, ok
}

// DeleteExpired removes every session expired as of now and returns the
// number removed.
func (s *MemoryTokenStore) DeleteExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}
