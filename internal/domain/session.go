package domain

import "time"

type SessionState int

const (
	StateAwaitingQuery SessionState = iota
	StateAwaitingOrientation
)

// Session is the per-chat conversation state. Seen-sets track media already
// delivered for the current query so repeat selections never return the
// same item twice.
type Session struct {
	State      SessionState
	Query      string
	SeenImages map[int64]struct{}
	SeenVideos map[int64]struct{}
	LastSeen   time.Time
}

func NewSession() *Session {
	return &Session{
		State:      StateAwaitingQuery,
		SeenImages: make(map[int64]struct{}),
		SeenVideos: make(map[int64]struct{}),
		LastSeen:   time.Now(),
	}
}

// SetQuery replaces the active query and drops both seen-sets: a new query
// starts deduplication from scratch.
func (s *Session) SetQuery(query string) {
	s.Query = query
	s.SeenImages = make(map[int64]struct{})
	s.SeenVideos = make(map[int64]struct{})
	s.State = StateAwaitingOrientation
}

// Reset returns the session to its initial state.
func (s *Session) Reset() {
	s.Query = ""
	s.SeenImages = make(map[int64]struct{})
	s.SeenVideos = make(map[int64]struct{})
	s.State = StateAwaitingQuery
}

// Seen returns the seen-set for the given media kind.
func (s *Session) Seen(kind MediaKind) map[int64]struct{} {
	if kind == MediaKindVideo {
		return s.SeenVideos
	}
	return s.SeenImages
}

func (s *Session) MarkSeen(kind MediaKind, id int64) {
	s.Seen(kind)[id] = struct{}{}
}
