package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/cache"
	"github.com/parceltrack/parceltrack/pkg/domain"
	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
)

type deleteShipmentHandler struct {
	logger *logrus.Logger
	guard  *ratelimit.Guard
	repo   shipment.Repository
	cache  *cache.Cache
}

func NewDeleteShipmentHandler(
	logger *logrus.Logger,
	guard *ratelimit.Guard,
	repo shipment.Repository,
	cache *cache.Cache,
) Handler {
	return &deleteShipmentHandler{
		logger: logger,
		guard:  guard,
		repo:   repo,
		cache:  cache,
	}
}

func (h *deleteShipmentHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	if res := h.guard.Admit(ratelimit.OpDeleteShipment, userID.String()); !res.Allowed {
		return rateLimited(c, h.guard, ratelimit.OpDeleteShipment)
	}

	shipmentID, err := uuid.Parse(c.Params("shipment_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shipment ID"})
	}

	if err := h.repo.Delete(c.Context(), userID, shipmentID); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shipment not found"})
		}
		h.logger.WithError(err).Error("failed to delete shipment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete shipment"})
	}

	if err := h.cache.InvalidateShipment(c.Context(), userID.String(), shipmentID.String()); err != nil {
		h.logger.WithError(err).Error("failed to invalidate shipment cache")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
