package http

import (
	"github.com/gofiber/fiber/v2"
	domainIntegration "github.com/parceltrack/parceltrack/pkg/domain/integration"
	"github.com/sirupsen/logrus"
)

type listIntegrationsHandler struct {
	logger *logrus.Logger
	repo   domainIntegration.Repository
}

func NewListIntegrationsHandler(logger *logrus.Logger, repo domainIntegration.Repository) Handler {
	return &listIntegrationsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listIntegrationsHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	integrations, err := h.repo.List(c.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list integrations")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list integrations"})
	}

	return c.Status(fiber.StatusOK).JSON(integrations)
}
