package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"ai-doctor-chat-app/dto/res"
	"ai-doctor-chat-app/security"
)

type Middleware struct {
	*security.JWT
	Log *logrus.Logger
}

func NewMiddleware(jwt *security.JWT, logger *logrus.Logger) *Middleware {
	return &Middleware{JWT: jwt, Log: logger}
}

func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: middleware.JWT.SecretKey()},
		ContextKey: "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Error("Failed to validate JWT")
			return ctx.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
				Status:     fiber.ErrUnauthorized.Message,
				StatusCode: fiber.StatusUnauthorized,
				Error:      "Token is not valid",
			})
		},
	})(c)
}

func (middleware *Middleware) ExtractUserID(c *fiber.Ctx) error {
	authorization := c.Get("Authorization")
	if len(authorization) < 8 {
		return fiber.ErrUnauthorized
	}

	userID, err := middleware.JWT.GetUserIdFromToken(authorization[7:])
	if err != nil {
		middleware.Log.WithError(err).Error("Failed to extract user ID from token")
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Failed to extract user ID from token",
		})
	}

	c.Locals("user_id", userID)
	return c.Next()
}
