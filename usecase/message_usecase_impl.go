package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"ai-doctor-chat-app/dto/res"
	"ai-doctor-chat-app/entity"
	"ai-doctor-chat-app/enum"
	"ai-doctor-chat-app/repository"
)

type messageUsecase struct {
	messages *repository.MessageRepository
	log      *logrus.Logger
}

func NewMessageUsecase(messages *repository.MessageRepository, log *logrus.Logger) MessageUsecase {
	return &messageUsecase{messages: messages, log: log}
}

func (uc *messageUsecase) Append(ctx context.Context, userID string, role enum.Role, content string) (*entity.Message, error) {
	message, err := uc.messages.Append(ctx, userID, role, content)
	if err != nil {
		uc.log.WithError(err).Error("failed to append message")
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}
	return message, nil
}

func (uc *messageUsecase) Recent(ctx context.Context, userID string, limit int) ([]entity.Message, error) {
	messages, err := uc.messages.Recent(ctx, userID, limit)
	if err != nil {
		uc.log.WithError(err).Error("failed to load recent messages")
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}
	return messages, nil
}

func (uc *messageUsecase) All(ctx context.Context, userID string) ([]entity.Message, error) {
	messages, err := uc.messages.All(ctx, userID)
	if err != nil {
		uc.log.WithError(err).Error("failed to load message history")
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}
	return messages, nil
}

// History returns the user's persisted turns as DTOs, recent-limit when limit
// is positive, the full history otherwise.
func (uc *messageUsecase) History(ctx context.Context, userID string, limit int) ([]res.MessageResponse, error) {
	var (
		messages []entity.Message
		err      error
	)
	if limit > 0 {
		messages, err = uc.Recent(ctx, userID, limit)
	} else {
		messages, err = uc.All(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return MapMessageResponses(messages), nil
}

func MapMessageResponses(messages []entity.Message) []res.MessageResponse {
	responses := make([]res.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, res.MessageResponse{
			MessageId: message.ID,
			Role:      string(message.Role),
			Content:   message.Content,
			CreatedAt: message.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return responses
}
