package service

import (
	"sync"
	"time"

	"github.com/set-night/pixelbot/internal/domain"
)

// SessionStore holds per-chat conversation state in memory. Sessions are
// created lazily on first use and evicted after an idle timeout; they do
// not survive a restart.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*sessionEntry)}
}

// Do runs fn with the chat's session under its lock. Each session handles
// one event at a time, so two selections from the same chat can never race
// on the seen-sets; different chats proceed independently.
func (st *SessionStore) Do(chatID int64, fn func(*domain.Session)) {
	st.mu.Lock()
	e, ok := st.sessions[chatID]
	if !ok {
		e = &sessionEntry{session: domain.NewSession()}
		st.sessions[chatID] = e
	}
	st.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.LastSeen = time.Now()
	fn(e.session)
}

// EvictIdle drops sessions idle for longer than maxAge and reports how
// many were removed.
func (st *SessionStore) EvictIdle(maxAge time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	evicted := 0
	cutoff := time.Now().Add(-maxAge)
	for chatID, e := range st.sessions {
		e.mu.Lock()
		idle := e.session.LastSeen.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(st.sessions, chatID)
			evicted++
		}
	}
	return evicted
}

func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
