package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"ai-doctor-chat-app/config/common"
	"ai-doctor-chat-app/config/logger"
	"ai-doctor-chat-app/handler"
	"ai-doctor-chat-app/llm"
	"ai-doctor-chat-app/middleware"
	"ai-doctor-chat-app/repository"
	"ai-doctor-chat-app/routes"
	"ai-doctor-chat-app/security"
	"ai-doctor-chat-app/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Config *common.Config
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := logger.NewLogrus()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig.GetJwtConfig())
	newMiddleware := middleware.NewMiddleware(newJWT, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Config:     newConfig,
	})

	if err := app.Listen(":" + newConfig.GetAppPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func NewValidator() *validator.Validate {
	return validator.New()
}

func App(aC *AppConfig) {
	userRepository := repository.NewUserRepository(aC.GetDB())
	messageRepository := repository.NewMessageRepository(aC.GetDB())

	groqBaseURL, groqAPIKey, groqModel := aC.Config.GetGroqConfig()
	model, err := llm.NewGroqClient(groqBaseURL, groqAPIKey, groqModel)
	if err != nil {
		aC.Logger.WithError(err).Fatal("Failed to initialize chat-completion client")
	}

	appName, _ := aC.Config.GetAppConfig()

	authUsecase := usecase.NewAuthUsecase(userRepository, aC.Validate, aC.Logger, aC.JWT)
	messageUsecase := usecase.NewMessageUsecase(messageRepository, aC.Logger)
	conversationUsecase := usecase.NewConversationUsecase(messageUsecase, model, aC.Logger, usecase.ConversationConfig{
		AppName:        appName,
		OpeningEnabled: aC.Config.GetChatOpeningEnabled(),
	})

	authHandler := handler.NewAuthHandler(authUsecase, aC.Logger)
	chatHandler := handler.NewChatHandler(messageUsecase, aC.Logger)
	wsHandler := handler.NewWebSocketHandler(authUsecase, conversationUsecase, aC.Logger)

	route := routes.ConfigRoute{
		App:         aC.App,
		Middleware:  aC.Middleware,
		AuthHandler: authHandler,
		ChatHandler: chatHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)
}
