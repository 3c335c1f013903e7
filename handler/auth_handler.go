package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"ai-doctor-chat-app/dto/req"
	"ai-doctor-chat-app/dto/res"
	"ai-doctor-chat-app/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

func (handler *AuthHandler) RegisterUser(ctx *fiber.Ctx) error {
	payload := new(req.RegisterRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	authResponse, err := handler.AuthUsecase.RegisterUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to register new user")
		return err
	}

	response := res.CommonResponse[res.AuthResponse]{
		Message:    "Registration successful",
		StatusCode: fiber.StatusCreated,
		Data:       authResponse,
	}
	handler.Logger.Infof("Success register user with id: %s", authResponse.User.ID)
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *AuthHandler) LoginUser(ctx *fiber.Ctx) error {
	payload := new(req.LoginRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	authResponse, err := handler.AuthUsecase.LoginUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Warn("Failed login attempt")
		return err
	}

	response := res.CommonResponse[res.AuthResponse]{
		Message:    "Login successful",
		StatusCode: fiber.StatusOK,
		Data:       authResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AuthHandler) GetUserByToken(ctx *fiber.Ctx) error {
	authorization := ctx.Get("Authorization")
	if len(authorization) < 8 {
		return fiber.ErrUnauthorized
	}
	token := authorization[7:]

	userResponse, err := handler.AuthUsecase.GetUserByToken(ctx.Context(), token)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get user by token")
		return err
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully retrieved user",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
