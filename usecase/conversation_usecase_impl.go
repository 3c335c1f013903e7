package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"ai-doctor-chat-app/entity"
	"ai-doctor-chat-app/enum"
	"ai-doctor-chat-app/llm"
)

type conversationUsecase struct {
	messages MessageStore
	model    llm.Client
	log      *logrus.Logger
	cfg      ConversationConfig
}

func NewConversationUsecase(messages MessageStore, model llm.Client, logger *logrus.Logger, cfg ConversationConfig) ConversationUsecase {
	return &conversationUsecase{
		messages: messages,
		model:    model,
		log:      logger,
		cfg:      cfg.withDefaults(),
	}
}

func (uc *conversationUsecase) BeginSession(ctx context.Context, user *entity.User) (*Session, error) {
	session := NewSession(user)

	// Restore the recent persisted history. A storage failure here degrades
	// to an empty transcript so the user can still chat.
	restored, err := uc.messages.Recent(ctx, user.ID, uc.cfg.HistoryLimit)
	if err != nil {
		uc.log.WithError(err).Warn("failed to restore chat history, starting empty")
		restored = nil
	}
	session.restored = restored
	for _, message := range restored {
		session.Append(entity.Turn{Role: message.Role, Content: message.Content})
	}

	session.systemTurns = []entity.Turn{
		{Role: enum.RoleSystem, Content: personaPrompt(uc.cfg.AppName)},
		{Role: enum.RoleSystem, Content: fmt.Sprintf("The user details are: %v.", user.BasicInfo())},
	}

	return session, nil
}

func (uc *conversationUsecase) OpenConversation(ctx context.Context, session *Session, onChunk func(chunk string)) (string, error) {
	if !session.Authenticated() {
		return "", ErrSessionClosed
	}
	// One opening per session, ever.
	if !uc.cfg.OpeningEnabled || session.welcomeSent {
		return "", nil
	}
	session.welcomeSent = true

	opening := entity.Turn{Role: enum.RoleSystem, Content: "Start the conversation."}
	greeting, err := uc.complete(ctx, session, &opening, onChunk)
	if err != nil {
		// No greeting is fine; the session stays usable.
		uc.log.WithError(err).Warn("opening turn failed")
		return "", nil
	}

	session.Append(entity.Turn{Role: enum.RoleAssistant, Content: greeting})
	// Held back until the user actually engages, so a greeting nobody
	// reads never reaches storage.
	session.pendingAssistant = &greeting
	return greeting, nil
}

func (uc *conversationUsecase) SendMessage(ctx context.Context, session *Session, content string, onChunk func(chunk string)) (string, error) {
	if !session.Authenticated() {
		return "", ErrSessionClosed
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > uc.cfg.MaxMessageRunes {
		return "", ErrMessageTooLong
	}

	// The user has engaged: flush the held greeting. Cleared only once the
	// flush lands, so a transient storage failure leaves it pending and the
	// next attempt re-flushes instead of dropping it from durable history.
	if session.pendingAssistant != nil {
		if _, err := uc.messages.Append(ctx, session.User.ID, enum.RoleAssistant, *session.pendingAssistant); err != nil {
			uc.log.WithError(err).Warn("failed to flush pending greeting")
			return "", err
		}
		session.pendingAssistant = nil
	}

	// The user turn enters the transcript first, so a persistence failure
	// never loses what they typed.
	session.Append(entity.Turn{Role: enum.RoleUser, Content: content})
	if _, err := uc.messages.Append(ctx, session.User.ID, enum.RoleUser, content); err != nil {
		return "", err
	}

	reply, err := uc.complete(ctx, session, nil, onChunk)
	if err != nil {
		// Partial output is discarded; transcript and history stay as they
		// were before the call. The user may simply retry.
		return "", err
	}

	session.Append(entity.Turn{Role: enum.RoleAssistant, Content: reply})
	if _, err := uc.messages.Append(ctx, session.User.ID, enum.RoleAssistant, reply); err != nil {
		// The reply already streamed to the user; a gap in history beats
		// dropping it from the session.
		uc.log.WithError(err).Warn("failed to persist assistant turn")
	}

	return reply, nil
}

func (uc *conversationUsecase) EndSession(session *Session) {
	session.Reset()
}

// complete builds the outbound request — system turns, the trailing trim
// window of the transcript, and an optional extra instruction — and runs one
// bounded streaming completion.
func (uc *conversationUsecase) complete(ctx context.Context, session *Session, extra *entity.Turn, onChunk func(chunk string)) (string, error) {
	outbound := make([]entity.Turn, 0, len(session.systemTurns)+uc.cfg.TrimWindow+1)
	outbound = append(outbound, session.systemTurns...)
	outbound = append(outbound, session.Tail(uc.cfg.TrimWindow)...)
	if extra != nil {
		outbound = append(outbound, *extra)
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.CallTimeout)
	defer cancel()

	reply, err := uc.model.Complete(callCtx, outbound, onChunk)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrModelCallFailure, err)
	}
	return reply, nil
}
