package cache

import "sync"

// SessionLocks serializes quiz operations per session id. Answering a question
// is not commutative with reading it, so submit/finish/abandon on the same
// session must not interleave; different sessions stay independent.
type SessionLocks struct {
	mu   sync.Mutex
	held map[int64]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewSessionLocks() *SessionLocks {
	return &SessionLocks{
		held: make(map[int64]*sessionLock),
	}
}

// Acquire blocks until the lock for the given session is free and returns the
// matching release func. Entries are dropped once nobody waits on them.
func (s *SessionLocks) Acquire(sessionID int64) func() {
	s.mu.Lock()
	l, exists := s.held[sessionID]
	if !exists {
		l = &sessionLock{}
		s.held[sessionID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.held, sessionID)
		}
		s.mu.Unlock()
	}
}
