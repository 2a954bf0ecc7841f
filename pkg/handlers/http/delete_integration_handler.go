package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/domain"
	domainIntegration "github.com/parceltrack/parceltrack/pkg/domain/integration"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
)

type deleteIntegrationHandler struct {
	logger *logrus.Logger
	guard  *ratelimit.Guard
	repo   domainIntegration.Repository
}

func NewDeleteIntegrationHandler(
	logger *logrus.Logger,
	guard *ratelimit.Guard,
	repo domainIntegration.Repository,
) Handler {
	return &deleteIntegrationHandler{
		logger: logger,
		guard:  guard,
		repo:   repo,
	}
}

// Handle disconnects the shop and drops its mirrored products in the same
// transaction.
func (h *deleteIntegrationHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	if res := h.guard.Admit(ratelimit.OpDeleteIntegration, userID.String()); !res.Allowed {
		return rateLimited(c, h.guard, ratelimit.OpDeleteIntegration)
	}

	integrationID, err := uuid.Parse(c.Params("integration_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid integration ID"})
	}

	if err := h.repo.Delete(c.Context(), userID, integrationID); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "integration not found"})
		}
		h.logger.WithError(err).Error("failed to delete integration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete integration"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
