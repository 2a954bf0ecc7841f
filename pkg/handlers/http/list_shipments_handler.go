package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
	"github.com/sirupsen/logrus"
)

const defaultPageSize = 50

type listShipmentsHandler struct {
	logger *logrus.Logger
	repo   shipment.Repository
}

func NewListShipmentsHandler(logger *logrus.Logger, repo shipment.Repository) Handler {
	return &listShipmentsHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary List shipments
// @Description Lists the authenticated user's shipments, newest first
// @Tags Shipments
// @Produce json
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} shipment.Shipment
// @Router /api/v1/shipments [get]
func (h *listShipmentsHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", defaultPageSize)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}

	shipments, err := h.repo.List(c.Context(), userID, offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list shipments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list shipments"})
	}

	return c.Status(fiber.StatusOK).JSON(shipments)
}
