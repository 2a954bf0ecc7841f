package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/cache"
	"github.com/parceltrack/parceltrack/pkg/domain"
	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
	"github.com/sirupsen/logrus"
)

type getShipmentHandler struct {
	logger *logrus.Logger
	repo   shipment.Repository
	cache  *cache.Cache
}

func NewGetShipmentHandler(logger *logrus.Logger, repo shipment.Repository, cache *cache.Cache) Handler {
	return &getShipmentHandler{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

func (h *getShipmentHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	shipmentID, err := uuid.Parse(c.Params("shipment_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shipment ID"})
	}

	if cached, err := h.cache.GetShipment(c.Context(), userID.String(), shipmentID.String()); err == nil && cached != nil {
		return c.Status(fiber.StatusOK).JSON(cached)
	}

	entity, err := h.repo.Get(c.Context(), userID, shipmentID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shipment not found"})
		}
		h.logger.WithError(err).Error("failed to fetch shipment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch shipment"})
	}

	if err := h.cache.SaveShipment(c.Context(), userID.String(), entity); err != nil {
		h.logger.WithError(err).Error("failed to cache shipment")
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
