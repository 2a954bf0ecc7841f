package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/parceltrack/parceltrack/pkg/cache"
	domainCarrier "github.com/parceltrack/parceltrack/pkg/domain/carrier"
	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
	"github.com/parceltrack/parceltrack/pkg/handlers/http/request"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type createShipmentHandler struct {
	logger      *logrus.Logger
	guard       *ratelimit.Guard
	repo        shipment.Repository
	carrierRepo domainCarrier.Repository
	cache       *cache.Cache
}

// NewCreateShipmentHandler @Summary Create a shipment
// @Description Registers a parcel to track for the authenticated user
// @Tags Shipments
// @Accept json
// @Produce json
// @Param shipment body request.CreateShipmentRequest true "Shipment request body"
// @Success 201 {object} shipment.Shipment "Shipment created"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Router /api/v1/shipments [post]
func NewCreateShipmentHandler(
	logger *logrus.Logger,
	guard *ratelimit.Guard,
	repo shipment.Repository,
	carrierRepo domainCarrier.Repository,
	cache *cache.Cache,
) Handler {
	return &createShipmentHandler{
		logger:      logger,
		guard:       guard,
		repo:        repo,
		carrierRepo: carrierRepo,
		cache:       cache,
	}
}

func (h *createShipmentHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	if res := h.guard.Admit(ratelimit.OpCreateShipment, userID.String()); !res.Allowed {
		return rateLimited(c, h.guard, ratelimit.OpCreateShipment)
	}

	var req request.CreateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	carrierEntity, err := h.carrierRepo.GetByCode(c.Context(), req.CarrierCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown carrier code"})
		}
		h.logger.WithError(err).Error("failed to resolve carrier")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to resolve carrier"})
	}

	entity := shipment.Shipment{
		UserID:         userID,
		CarrierID:      carrierEntity.ID,
		TrackingNumber: req.TrackingNumber,
		Title:          req.Title,
		Status:         shipment.StatusPending,
		Origin:         req.Origin,
		Destination:    req.Destination,
	}

	if err := h.repo.Create(c.Context(), &entity); err != nil {
		h.logger.WithError(err).Error("failed to create shipment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.cache.SaveShipment(c.Context(), userID.String(), &entity); err != nil {
		h.logger.WithError(err).Error("failed to cache shipment")
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
