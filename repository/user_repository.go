package repository

import (
	"context"

	"gorm.io/gorm"

	"ai-doctor-chat-app/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository[entity.User]{DB: db}}
}

func (repository *UserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	user := &entity.User{}
	if err := repository.DB.WithContext(ctx).Where("phone = ?", phone).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user := &entity.User{}
	if err := repository.FindById(ctx, user, id); err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *UserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := repository.DB.WithContext(ctx).
		Model(&entity.User{}).
		Where("phone = ?", phone).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
