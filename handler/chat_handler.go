package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"ai-doctor-chat-app/dto/res"
	"ai-doctor-chat-app/usecase"
)

type ChatHandler struct {
	usecase.MessageUsecase
	*logrus.Logger
}

func NewChatHandler(messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{MessageUsecase: messageUsecase, Logger: logger}
}

// GetHistory returns the authenticated user's persisted chat turns in
// chronological order. ?limit=N returns the most recent N; omitted or zero
// returns the full history.
func (handler *ChatHandler) GetHistory(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("user_id").(string)
	if !ok || userID == "" {
		return fiber.ErrUnauthorized
	}

	limit := ctx.QueryInt("limit", 0)

	messages, err := handler.MessageUsecase.History(ctx.Context(), userID, limit)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get chat history")
		return err
	}

	response := res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully retrieved chat history",
		StatusCode: fiber.StatusOK,
		Data:       messages,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
