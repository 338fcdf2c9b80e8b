package bot

import (
	"sync"
	"time"

	"zadachnik/models"
)

// Sessions older than this are dropped on the next access. Abandoned
// creation flows otherwise stay in memory for the lifetime of the
// process.
const sessionTTL = 24 * time.Hour

// SessionStore keeps per-user conversation state. Sessions live only in
// process memory: any unrelated command evicts them, and expired
// entries are dropped lazily.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]models.Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]models.Session),
		now:      time.Now,
	}
}

func (s *SessionStore) Put(user int64, sess models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.UpdatedAt = s.now()
	s.sessions[user] = sess
}

func (s *SessionStore) Get(user int64) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[user]
	if !ok {
		return models.Session{}, false
	}
	if s.now().Sub(sess.UpdatedAt) > sessionTTL {
		delete(s.sessions, user)
		return models.Session{}, false
	}
	return sess, true
}

func (s *SessionStore) Delete(user int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, user)
}
