package session

import (
	"fmt"
	"sync"

	"github.com/vintervu/interview-server/internal/core/domain"
	"github.com/vintervu/interview-server/internal/core/ports"
)

// Store is the in-memory session store. Each session gets its own entry
// lock so work on one interview never blocks another; the outer map lock is
// held only for lookups and inserts.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	sess *domain.Session
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// Put registers a session under its token, replacing any previous entry.
func (s *Store) Put(sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sess.Token] = &entry{sess: sess}
}

// Acquire locks the session's entry and returns the session with a release
// func. Callers must call release exactly once and must not hold the lock
// across slow I/O.
func (s *Store) Acquire(token string) (*domain.Session, func(), error) {
	s.mu.Lock()
	e, ok := s.entries[token]
	s.mu.Unlock()
	if !ok {
		return nil, nil, domain.WrapError(domain.ErrSessionNotFound, "session.acquire", fmt.Errorf("token %q", token))
	}
	e.mu.Lock()
	return e.sess, e.mu.Unlock, nil
}

// Len reports the number of stored sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
