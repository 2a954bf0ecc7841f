package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/cache"
	"github.com/parceltrack/parceltrack/pkg/domain"
	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
	"github.com/parceltrack/parceltrack/pkg/domain/tracking"
	"github.com/parceltrack/parceltrack/pkg/handlers/http/request"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
)

type addTrackingEventHandler struct {
	logger       *logrus.Logger
	guard        *ratelimit.Guard
	shipmentRepo shipment.Repository
	eventRepo    tracking.Repository
	cache        *cache.Cache
}

func NewAddTrackingEventHandler(
	logger *logrus.Logger,
	guard *ratelimit.Guard,
	shipmentRepo shipment.Repository,
	eventRepo tracking.Repository,
	cache *cache.Cache,
) Handler {
	return &addTrackingEventHandler{
		logger:       logger,
		guard:        guard,
		shipmentRepo: shipmentRepo,
		eventRepo:    eventRepo,
		cache:        cache,
	}
}

// Handle appends a checkpoint to the shipment timeline. When the event
// carries a recognized shipment status the shipment itself is moved along.
func (h *addTrackingEventHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	if res := h.guard.Admit(ratelimit.OpAddTrackingEvent, userID.String()); !res.Allowed {
		return rateLimited(c, h.guard, ratelimit.OpAddTrackingEvent)
	}

	shipmentID, err := uuid.Parse(c.Params("shipment_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shipment ID"})
	}

	var req request.AddTrackingEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	owned, err := h.shipmentRepo.Get(c.Context(), userID, shipmentID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shipment not found"})
		}
		h.logger.WithError(err).Error("failed to fetch shipment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch shipment"})
	}

	event := tracking.Event{
		ShipmentID: shipmentID,
		Status:     req.Status,
		Message:    req.Message,
		Location:   req.Location,
	}
	if req.OccurredAt != nil {
		event.OccurredAt = *req.OccurredAt
	}

	if err := h.eventRepo.Create(c.Context(), &event); err != nil {
		h.logger.WithError(err).Error("failed to create tracking event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if shipment.ValidStatus(req.Status) && owned.Status != req.Status {
		owned.Status = req.Status
		if err := h.shipmentRepo.Update(c.Context(), owned); err != nil {
			h.logger.WithError(err).Error("failed to advance shipment status")
		} else if err := h.cache.InvalidateShipment(c.Context(), userID.String(), shipmentID.String()); err != nil {
			h.logger.WithError(err).Error("failed to invalidate shipment cache")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}
