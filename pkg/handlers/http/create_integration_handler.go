package http

import (
	"github.com/gofiber/fiber/v2"
	domainIntegration "github.com/parceltrack/parceltrack/pkg/domain/integration"
	"github.com/parceltrack/parceltrack/pkg/handlers/http/request"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
)

type createIntegrationHandler struct {
	logger *logrus.Logger
	guard  *ratelimit.Guard
	repo   domainIntegration.Repository
}

// NewCreateIntegrationHandler @Summary Connect a shop
// @Description Connects a Shopify or TikTok Shop account to the user
// @Tags Integrations
// @Accept json
// @Produce json
// @Param integration body request.CreateIntegrationRequest true "Integration request body"
// @Success 201 {object} integration.Integration "Integration created"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Router /api/v1/integrations [post]
func NewCreateIntegrationHandler(
	logger *logrus.Logger,
	guard *ratelimit.Guard,
	repo domainIntegration.Repository,
) Handler {
	return &createIntegrationHandler{
		logger: logger,
		guard:  guard,
		repo:   repo,
	}
}

func (h *createIntegrationHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	if res := h.guard.Admit(ratelimit.OpCreateIntegration, userID.String()); !res.Allowed {
		return rateLimited(c, h.guard, ratelimit.OpCreateIntegration)
	}

	var req request.CreateIntegrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity := domainIntegration.Integration{
		UserID:      userID,
		Platform:    req.Platform,
		ShopDomain:  req.ShopDomain,
		AccessToken: req.AccessToken,
		Status:      domainIntegration.StatusConnected,
	}

	if err := h.repo.Create(c.Context(), &entity); err != nil {
		h.logger.WithError(err).Error("failed to create integration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
