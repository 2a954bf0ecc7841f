package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/domain"
	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
	"github.com/parceltrack/parceltrack/pkg/domain/tracking"
	"github.com/sirupsen/logrus"
)

type listTrackingEventsHandler struct {
	logger       *logrus.Logger
	shipmentRepo shipment.Repository
	eventRepo    tracking.Repository
}

func NewListTrackingEventsHandler(
	logger *logrus.Logger,
	shipmentRepo shipment.Repository,
	eventRepo tracking.Repository,
) Handler {
	return &listTrackingEventsHandler{
		logger:       logger,
		shipmentRepo: shipmentRepo,
		eventRepo:    eventRepo,
	}
}

func (h *listTrackingEventsHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	shipmentID, err := uuid.Parse(c.Params("shipment_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shipment ID"})
	}

	// Ownership check before touching the timeline.
	if _, err := h.shipmentRepo.Get(c.Context(), userID, shipmentID); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shipment not found"})
		}
		h.logger.WithError(err).Error("failed to fetch shipment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch shipment"})
	}

	events, err := h.eventRepo.ListByShipment(c.Context(), shipmentID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list tracking events")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list tracking events"})
	}

	return c.Status(fiber.StatusOK).JSON(events)
}
