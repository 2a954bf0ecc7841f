package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	appIntegration "github.com/parceltrack/parceltrack/pkg/app/integration"
	"github.com/parceltrack/parceltrack/pkg/domain"
	domainIntegration "github.com/parceltrack/parceltrack/pkg/domain/integration"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
)

type syncIntegrationHandler struct {
	logger *logrus.Logger
	guard  *ratelimit.Guard
	repo   domainIntegration.Repository
	syncer appIntegration.ProductSyncer
}

// NewSyncIntegrationHandler @Summary Sync products
// @Description Pulls the remote catalog into the products table
// @Tags Integrations
// @Produce json
// @Param integration_id path string true "Integration ID"
// @Success 200 {object} map[string]interface{} "Sync summary"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Failure 502 {object} map[string]interface{} "Remote platform failure"
// @Router /api/v1/integrations/{integration_id}/sync [post]
func NewSyncIntegrationHandler(
	logger *logrus.Logger,
	guard *ratelimit.Guard,
	repo domainIntegration.Repository,
	syncer appIntegration.ProductSyncer,
) Handler {
	return &syncIntegrationHandler{
		logger: logger,
		guard:  guard,
		repo:   repo,
		syncer: syncer,
	}
}

func (h *syncIntegrationHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	integrationID, err := uuid.Parse(c.Params("integration_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid integration ID"})
	}

	// Sync is the most expensive operation, so the limit is scoped per
	// integration: caller key is user id plus integration id.
	callerKey := fmt.Sprintf("%s:%s", userID, integrationID)
	if res := h.guard.Admit(ratelimit.OpSyncIntegration, callerKey); !res.Allowed {
		return rateLimited(c, h.guard, ratelimit.OpSyncIntegration)
	}

	entity, err := h.repo.Get(c.Context(), userID, integrationID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "integration not found"})
		}
		h.logger.WithError(err).Error("failed to fetch integration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch integration"})
	}

	synced, err := h.syncer.Sync(c.Context(), entity)
	if err != nil {
		h.logger.WithError(err).Error("product sync failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "product sync failed"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"integration_id": entity.ID,
		"synced":         synced,
		"last_synced_at": entity.LastSyncedAt,
	})
}
