package usecase

import (
	"context"
	"time"

	"ai-doctor-chat-app/entity"
)

// ConversationUsecase is the session/conversation manager. It decides what is
// sent to the model, when, and what gets persisted. One Session is owned by
// exactly one caller; operations on it are not safe for concurrent use.
type ConversationUsecase interface {
	// BeginSession restores the recent persisted history into a fresh
	// Session and synthesizes the system turns. No model call happens here,
	// so the caller can present the restored history before any live output.
	BeginSession(ctx context.Context, user *entity.User) (*Session, error)

	// OpenConversation requests the opening turn from the model, streaming
	// it through onChunk. At most one opening per session; the greeting is
	// held unpersisted until the user sends their first message. Returns the
	// empty string when openings are disabled, already sent, or the model
	// call fails (the session stays usable without a greeting).
	OpenConversation(ctx context.Context, session *Session, onChunk func(chunk string)) (string, error)

	// SendMessage runs one full turn: flush any pending greeting, persist the
	// user turn, call the model (streaming through onChunk), persist the
	// assistant turn. On a model failure the transcript and persisted history
	// are left exactly as they were before the call.
	SendMessage(ctx context.Context, session *Session, content string, onChunk func(chunk string)) (string, error)

	// EndSession discards the in-memory transcript and identity. Idempotent;
	// persisted history is untouched.
	EndSession(session *Session)
}

// ConversationConfig bounds the conversation manager. Zero values fall back
// to the defaults below.
type ConversationConfig struct {
	// AppName is the assistant's display name, woven into the persona prompt.
	AppName string
	// OpeningEnabled makes the assistant speak first on a fresh session.
	OpeningEnabled bool
	// HistoryLimit is how many persisted messages are restored at session start.
	HistoryLimit int
	// TrimWindow is the trailing transcript slice sent with each model call.
	TrimWindow int
	// MaxMessageRunes caps one user submission.
	MaxMessageRunes int
	// CallTimeout bounds one whole streaming completion.
	CallTimeout time.Duration
}

const (
	defaultHistoryLimit    = 10
	defaultTrimWindow      = 15
	defaultMaxMessageRunes = 500
	defaultCallTimeout     = 60 * time.Second
)

func (c ConversationConfig) withDefaults() ConversationConfig {
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = defaultHistoryLimit
	}
	if c.TrimWindow <= 0 {
		c.TrimWindow = defaultTrimWindow
	}
	if c.MaxMessageRunes <= 0 {
		c.MaxMessageRunes = defaultMaxMessageRunes
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = defaultCallTimeout
	}
	return c
}
