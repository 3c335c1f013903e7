package usecase

import (
	"ai-doctor-chat-app/entity"
)

// Session is the in-memory state of one authenticated chat connection. It
// owns the ordered transcript exclusively; nothing here is shared across
// connections and nothing here is persisted as-is. The zero value after
// Reset is the unauthenticated state.
type Session struct {
	User *entity.User

	// systemTurns are synthesized once at session start (persona prompt plus
	// user profile facts) and are never written to the message store.
	systemTurns []entity.Turn

	// transcript holds the user/assistant turns in order: restored history
	// first, then live turns.
	transcript []entity.Turn

	// restored keeps the persisted messages loaded at session start so the
	// presentation layer can render them without a second query.
	restored []entity.Message

	// welcomeSent guards the one-time opening turn per session.
	welcomeSent bool

	// pendingAssistant holds an assistant greeting that has been shown but
	// not yet persisted. It is flushed-then-cleared exactly once, before the
	// next model call.
	pendingAssistant *string
}

func NewSession(user *entity.User) *Session {
	return &Session{User: user}
}

func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}

func (s *Session) Append(turn entity.Turn) {
	s.transcript = append(s.transcript, turn)
}

// Tail returns the trailing n transcript turns. This is the trim window: a
// fixed trailing slice, not a summarization — older context is dropped.
func (s *Session) Tail(n int) []entity.Turn {
	if n <= 0 || len(s.transcript) <= n {
		return s.transcript
	}
	return s.transcript[len(s.transcript)-n:]
}

func (s *Session) SystemTurns() []entity.Turn {
	return s.systemTurns
}

func (s *Session) Transcript() []entity.Turn {
	return s.transcript
}

// Restored returns the persisted messages loaded when the session began.
func (s *Session) Restored() []entity.Message {
	return s.restored
}

// PendingGreeting reports the unsaved assistant greeting, if any.
func (s *Session) PendingGreeting() (string, bool) {
	if s.pendingAssistant == nil {
		return "", false
	}
	return *s.pendingAssistant, true
}

// Reset returns the session to the unauthenticated state. Persisted history
// is untouched. Safe to call more than once.
func (s *Session) Reset() {
	if s == nil {
		return
	}
	s.User = nil
	s.systemTurns = nil
	s.transcript = nil
	s.restored = nil
	s.welcomeSent = false
	s.pendingAssistant = nil
}
