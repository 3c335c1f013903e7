package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ai-doctor-chat-app/config/common"
	"ai-doctor-chat-app/dto/res"
	"ai-doctor-chat-app/usecase"
)

func NewFiber(cfg *common.Config) *fiber.App {
	appName, _ := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       appName,
		ErrorHandler:  errorHandler,
	})
}

// errorHandler maps the usecase error taxonomy to HTTP statuses. Credential
// failures stay generic so the response never reveals whether a phone number
// is registered.
func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong. Please try again"

	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrors):
		code = fiber.StatusBadRequest
		fields := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, fieldError.Field())
		}
		return ctx.Status(code).JSON(res.ErrorResponse{
			Status:     "Bad Request",
			StatusCode: code,
			Error:      fiber.Map{"message": "All fields are required and must be valid", "fields": fields},
		})
	case errors.Is(err, usecase.ErrDuplicatePhone):
		code = fiber.StatusConflict
		message = "Phone number already registered"
	case errors.Is(err, usecase.ErrUnderage):
		code = fiber.StatusBadRequest
		message = "You must be at least 12 years old to register"
	case errors.Is(err, usecase.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
		message = "Invalid phone number or password"
	case errors.Is(err, usecase.ErrEmptyMessage), errors.Is(err, usecase.ErrMessageTooLong):
		code = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, usecase.ErrStorageUnavailable):
		code = fiber.StatusServiceUnavailable
	case errors.Is(err, usecase.ErrModelCallFailure):
		code = fiber.StatusBadGateway
		message = "Oops! Something went wrong. Please try again"
	default:
		var fiberError *fiber.Error
		if errors.As(err, &fiberError) {
			code = fiberError.Code
			message = fiberError.Message
		}
	}

	return ctx.Status(code).JSON(res.ErrorResponse{
		Status:     message,
		StatusCode: code,
		Error:      message,
	})
}
