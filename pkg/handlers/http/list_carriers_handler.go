package http

import (
	"github.com/gofiber/fiber/v2"
	appCarrier "github.com/parceltrack/parceltrack/pkg/app/carrier"
	"github.com/sirupsen/logrus"
)

type listCarriersHandler struct {
	logger *logrus.Logger
	finder appCarrier.Finder
}

func NewListCarriersHandler(logger *logrus.Logger, finder appCarrier.Finder) Handler {
	return &listCarriersHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary List carriers
// @Description Lists the supported shipping carriers
// @Tags Carriers
// @Produce json
// @Success 200 {array} carrier.Carrier
// @Router /api/v1/carriers [get]
func (h *listCarriersHandler) Handle(c *fiber.Ctx) error {
	carriers, err := h.finder.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list carriers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list carriers"})
	}
	return c.Status(fiber.StatusOK).JSON(carriers)
}
