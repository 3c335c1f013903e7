package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"ai-doctor-chat-app/dto/req"
	"ai-doctor-chat-app/dto/res"
	"ai-doctor-chat-app/entity"
	"ai-doctor-chat-app/enum"
	"ai-doctor-chat-app/security"
)

const minRegistrationAgeYears = 12

type AuthUsecaseImpl struct {
	Users UserStore
	*validator.Validate
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(users UserStore, validate *validator.Validate, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{Users: users, Validate: validate, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.AuthResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate register request")
		return res.AuthResponse{}, err
	}

	// dob format is enforced by the validator
	dob, err := time.Parse("2006-01-02", request.Dob)
	if err != nil {
		return res.AuthResponse{}, err
	}

	// age at registration must be at least 12 years
	cutoff := time.Now().AddDate(-minRegistrationAgeYears, 0, 0)
	if dob.After(cutoff) {
		return res.AuthResponse{}, ErrUnderage
	}

	// check phone uniqueness up front for a clean conflict message
	exists, err := uc.Users.ExistsByPhone(ctx, request.Phone)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to check phone uniqueness")
		return res.AuthResponse{}, ErrStorageUnavailable
	}
	if exists {
		return res.AuthResponse{}, ErrDuplicatePhone
	}

	hashPassword, err := security.HashPassword(request.Password)
	if err != nil {
		return res.AuthResponse{}, err
	}

	newUser := &entity.User{
		Phone:        request.Phone,
		PasswordHash: hashPassword,
		Name:         request.Name,
		Dob:          dob,
	}
	if request.Gender != "" {
		gender := enum.Gender(request.Gender)
		newUser.Gender = &gender
	}

	if err := uc.Users.Save(ctx, newUser); err != nil {
		// the unique index is the authority; a racing registration lands here
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res.AuthResponse{}, ErrDuplicatePhone
		}
		uc.Logger.WithError(err).Error("failed to save user")
		return res.AuthResponse{}, ErrStorageUnavailable
	}

	// registration logs the new user straight in
	token, err := uc.JWT.GenerateToken(newUser)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate token")
		return res.AuthResponse{}, err
	}

	uc.Logger.Infof("Registered new user with id: %s", newUser.ID)
	return res.AuthResponse{
		Token: token,
		User:  mapUserResponse(newUser),
	}, nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.AuthResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate login request")
		return res.AuthResponse{}, err
	}

	currentUser, err := uc.Users.FindByPhone(ctx, request.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same error as a wrong password: no account enumeration
			return res.AuthResponse{}, ErrInvalidCredentials
		}
		uc.Logger.WithError(err).Error("failed to find user by phone")
		return res.AuthResponse{}, ErrStorageUnavailable
	}

	if !security.ComparePassword(currentUser.PasswordHash, request.Password) {
		return res.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := uc.JWT.GenerateToken(currentUser)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate token")
		return res.AuthResponse{}, err
	}

	return res.AuthResponse{
		Token: token,
		User:  mapUserResponse(currentUser),
	}, nil
}

func (uc *AuthUsecaseImpl) UserFromToken(ctx context.Context, token string) (*entity.User, error) {
	userID, err := uc.JWT.GetUserIdFromToken(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := uc.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrStorageUnavailable
	}
	return user, nil
}

func (uc *AuthUsecaseImpl) GetUserByToken(ctx context.Context, token string) (res.UserResponse, error) {
	user, err := uc.UserFromToken(ctx, token)
	if err != nil {
		return res.UserResponse{}, err
	}
	return mapUserResponse(user), nil
}

func mapUserResponse(user *entity.User) res.UserResponse {
	gender := ""
	if user.Gender != nil {
		gender = string(*user.Gender)
	}
	return res.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Phone:     user.Phone,
		Dob:       user.Dob.Format("2006-01-02"),
		Gender:    gender,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
