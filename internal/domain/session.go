package domain

import "time"

// SessionKey identifies a conversation, e.g. a chat or user ID.
type SessionKey string

// Session owns the history of one conversation. The session survives a
// reset; only its history is cleared.
type Session struct {
	Key       SessionKey
	ID        string
	History   *History
	LastAdded *Symbol
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionView is a read-only copy of a session.
type SessionView struct {
	Key       SessionKey
	ID        string
	History   []Symbol
	Capacity  int
	LastAdded *Symbol
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Session) View() SessionView {
	view := SessionView{
		Key:       s.Key,
		ID:        s.ID,
		History:   s.History.Snapshot(),
		Capacity:  s.History.Cap(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.LastAdded != nil {
		last := *s.LastAdded
		view.LastAdded = &last
	}
	return view
}
