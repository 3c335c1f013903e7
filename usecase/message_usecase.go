package usecase

import (
	"context"

	"ai-doctor-chat-app/dto/res"
	"ai-doctor-chat-app/entity"
	"ai-doctor-chat-app/enum"
)

// MessageStore is the append-only persistence contract for chat turns. Recent
// and All both return messages in chronological order.
type MessageStore interface {
	Append(ctx context.Context, userID string, role enum.Role, content string) (*entity.Message, error)
	Recent(ctx context.Context, userID string, limit int) ([]entity.Message, error)
	All(ctx context.Context, userID string) ([]entity.Message, error)
}

type MessageUsecase interface {
	MessageStore
	History(ctx context.Context, userID string, limit int) ([]res.MessageResponse, error)
}
