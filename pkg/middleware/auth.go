package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parceltrack/parceltrack/pkg/common"
	"github.com/parceltrack/parceltrack/pkg/infra/jwt"
	"github.com/sirupsen/logrus"
)

const bearerPrefix = "Bearer "

type authMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

func NewAuthMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
) Middleware {
	return &authMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			m.logger.Debug("no bearer token provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
		}

		claims, err := m.jwtManager.DecodeToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			m.logger.WithError(err).Debug("invalid bearer token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		userID := claims.Subject

		ctx.Locals(common.UserIDContextKey, userID)
		ctx.Locals(common.LatencyContextKey, time.Now())

		c := context.WithValue(ctx.UserContext(), common.UserIDContextKey, userID)
		ctx.SetUserContext(c)

		return ctx.Next()
	}
}
