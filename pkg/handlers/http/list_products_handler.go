package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/domain"
	domainIntegration "github.com/parceltrack/parceltrack/pkg/domain/integration"
	"github.com/sirupsen/logrus"
)

type listProductsHandler struct {
	logger   *logrus.Logger
	repo     domainIntegration.Repository
	products domainIntegration.ProductRepository
}

func NewListProductsHandler(
	logger *logrus.Logger,
	repo domainIntegration.Repository,
	products domainIntegration.ProductRepository,
) Handler {
	return &listProductsHandler{
		logger:   logger,
		repo:     repo,
		products: products,
	}
}

func (h *listProductsHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
	}

	integrationID, err := uuid.Parse(c.Params("integration_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid integration ID"})
	}

	// Ownership check: products are reached through the integration.
	if _, err := h.repo.Get(c.Context(), userID, integrationID); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "integration not found"})
		}
		h.logger.WithError(err).Error("failed to fetch integration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch integration"})
	}

	products, err := h.products.ListByIntegration(c.Context(), integrationID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list products")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list products"})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}
