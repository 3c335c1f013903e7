package handler

import (
	"context"
	"errors"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"

	"ai-doctor-chat-app/dto/req"
	"ai-doctor-chat-app/dto/res"
	"ai-doctor-chat-app/usecase"
)

// WebSocketHandler serves the chat surface. One connection owns one Session:
// the read loop is the single logical thread of control, so while a reply is
// streaming no other state mutation can happen for that session.
type WebSocketHandler struct {
	*logrus.Logger
	usecase.AuthUsecase
	usecase.ConversationUsecase
}

func NewWebSocketHandler(authUsecase usecase.AuthUsecase, conversationUsecase usecase.ConversationUsecase, logger *logrus.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		Logger:              logger,
		AuthUsecase:         authUsecase,
		ConversationUsecase: conversationUsecase,
	}
}

func (handler *WebSocketHandler) HandleChat(c *websocket.Conn) {
	ctx := context.Background()

	token := c.Query("token")
	user, err := handler.AuthUsecase.UserFromToken(ctx, token)
	if err != nil {
		handler.Logger.WithError(err).Warn("Rejected websocket connection")
		handler.writeEvent(c, res.StreamEvent{Type: res.EventError, Content: "Invalid or expired session"})
		c.Close()
		return
	}

	streamChunk := func(chunk string) {
		handler.writeEvent(c, res.StreamEvent{Type: res.EventChunk, Content: chunk})
	}

	session, err := handler.ConversationUsecase.BeginSession(ctx, user)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to begin chat session")
		handler.writeEvent(c, res.StreamEvent{Type: res.EventError, Content: "Oops! Something went wrong. Please try again"})
		c.Close()
		return
	}
	// Logout: the transcript dies with the connection, history stays.
	defer handler.ConversationUsecase.EndSession(session)

	handler.Logger.Infof("Chat session started for user: %s", user.ID)

	// History first, so the greeting streams in below the turns it follows.
	handler.writeEvent(c, res.StreamEvent{
		Type:     res.EventHistory,
		Messages: usecase.MapMessageResponses(session.Restored()),
	})
	if greeting, _ := handler.ConversationUsecase.OpenConversation(ctx, session, streamChunk); greeting != "" {
		handler.writeEvent(c, res.StreamEvent{Type: res.EventDone, Content: greeting})
	}

	for {
		var payload req.MessageRequest
		if err := c.ReadJSON(&payload); err != nil {
			handler.Logger.Warnf("Read error: %v", err)
			break
		}

		reply, err := handler.ConversationUsecase.SendMessage(ctx, session, payload.Content, streamChunk)
		if err != nil {
			handler.Logger.WithError(err).Error("Failed to process chat turn")
			handler.writeEvent(c, res.StreamEvent{Type: res.EventError, Content: userFacingError(err)})
			continue
		}

		handler.writeEvent(c, res.StreamEvent{Type: res.EventDone, Content: reply})
	}
}

func (handler *WebSocketHandler) writeEvent(c *websocket.Conn, event res.StreamEvent) {
	if err := c.WriteJSON(event); err != nil {
		handler.Logger.Warnf("Error writing websocket event: %v", err)
	}
}

// userFacingError keeps infrastructure detail out of the chat surface; every
// failure is recoverable by retrying within the same session.
func userFacingError(err error) string {
	switch {
	case errors.Is(err, usecase.ErrEmptyMessage):
		return "Message cannot be empty"
	case errors.Is(err, usecase.ErrMessageTooLong):
		return "Message is too long"
	default:
		return "Oops! Something went wrong. Please try again"
	}
}
