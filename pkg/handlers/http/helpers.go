package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/common"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
)

// userIDFromCtx reads the authenticated user id stored by the auth
// middleware.
func userIDFromCtx(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(common.UserIDContextKey).(string)
	return uuid.Parse(raw)
}

// rateLimited writes the standard rejection: 429 with a Retry-After header
// derived from the operation's window.
func rateLimited(c *fiber.Ctx, guard *ratelimit.Guard, operation string) error {
	c.Set(fiber.HeaderRetryAfter, strconv.Itoa(guard.RetryAfter(operation)))
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"error": "rate limit exceeded, retry later",
	})
}
