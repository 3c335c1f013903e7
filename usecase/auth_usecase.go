package usecase

import (
	"context"

	"ai-doctor-chat-app/dto/req"
	"ai-doctor-chat-app/dto/res"
	"ai-doctor-chat-app/entity"
)

// UserStore is the credential store contract. Satisfied by
// repository.UserRepository.
type UserStore interface {
	Save(ctx context.Context, user *entity.User) error
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.AuthResponse, error)
	LoginUser(ctx context.Context, request *req.LoginRequest) (res.AuthResponse, error)
	UserFromToken(ctx context.Context, token string) (*entity.User, error)
	GetUserByToken(ctx context.Context, token string) (res.UserResponse, error)
}
