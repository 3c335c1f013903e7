package repository

import (
	"context"

	"gorm.io/gorm"

	"ai-doctor-chat-app/entity"
	"ai-doctor-chat-app/enum"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{Repository[entity.Message]{DB: db}}
}

// Append inserts one immutable chat turn with a server-assigned timestamp.
func (repository *MessageRepository) Append(ctx context.Context, userID string, role enum.Role, content string) (*entity.Message, error) {
	message := &entity.Message{
		UserID:  userID,
		Role:    role,
		Content: content,
	}
	if err := repository.Save(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Recent returns the limit most recently created messages for the user in
// chronological order: newest-first query, then reversed.
func (repository *MessageRepository) Recent(ctx context.Context, userID string, limit int) ([]entity.Message, error) {
	var messages []entity.Message
	err := repository.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// All returns the user's full chronological history.
func (repository *MessageRepository) All(ctx context.Context, userID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := repository.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
