package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/cache"
	"github.com/parceltrack/parceltrack/pkg/domain"
	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
	"github.com/parceltrack/parceltrack/pkg/handlers/http/request"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
)

type updateShipmentHandler struct {
	logger *logrus.Logger
	guard  *ratelimit.Guard
	repo   shipment.Repository
	cache  *cache.Cache
}

func NewUpdateShipmentHandler(
	logger *logrus.Logger,
	guard *ratelimit.Guard,
	repo shipment.Repository,
	cache *cache.Cache,
) Handler {
	return &updateShipmentHandler{
		logger: logger,
		guard:  guard,
		repo:   repo,
		cache:  cache,
	}
}

func (h *updateShipmentHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	if res := h.guard.Admit(ratelimit.OpUpdateShipment, userID.String()); !res.Allowed {
		return rateLimited(c, h.guard, ratelimit.OpUpdateShipment)
	}

	shipmentID, err := uuid.Parse(c.Params("shipment_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shipment ID"})
	}

	var req request.UpdateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity, err := h.repo.Get(c.Context(), userID, shipmentID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shipment not found"})
		}
		h.logger.WithError(err).Error("failed to fetch shipment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch shipment"})
	}

	if req.Title != "" {
		entity.Title = req.Title
	}
	if req.Status != "" {
		entity.Status = req.Status
	}
	if req.Origin != "" {
		entity.Origin = req.Origin
	}
	if req.Destination != "" {
		entity.Destination = req.Destination
	}

	if err := h.repo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update shipment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.cache.InvalidateShipment(c.Context(), userID.String(), shipmentID.String()); err != nil {
		h.logger.WithError(err).Error("failed to invalidate shipment cache")
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
