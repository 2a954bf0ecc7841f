package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appUser "github.com/parceltrack/parceltrack/pkg/app/user"
	"github.com/parceltrack/parceltrack/pkg/domain"
	"github.com/parceltrack/parceltrack/pkg/handlers/http/request"
	"github.com/parceltrack/parceltrack/pkg/infra/jwt"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
)

type registerHandler struct {
	logger     *logrus.Logger
	guard      *ratelimit.Guard
	registrar  appUser.Registrar
	jwtManager jwt.Manager
}

// NewRegisterHandler @Summary Register a new account
// @Description Creates a user and returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body request.RegisterRequest true "Account credentials"
// @Success 201 {object} map[string]interface{} "Token and user"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Router /api/v1/auth/register [post]
func NewRegisterHandler(
	logger *logrus.Logger,
	guard *ratelimit.Guard,
	registrar appUser.Registrar,
	jwtManager jwt.Manager,
) Handler {
	return &registerHandler{
		logger:     logger,
		guard:      guard,
		registrar:  registrar,
		jwtManager: jwtManager,
	}
}

func (h *registerHandler) Handle(c *fiber.Ctx) error {
	// Unauthenticated route: the caller key is the client address.
	if res := h.guard.Admit(ratelimit.OpRegister, c.IP()); !res.Allowed {
		return rateLimited(c, h.guard, ratelimit.OpRegister)
	}

	var req request.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity, err := h.registrar.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to register user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to register user"})
	}

	token, err := h.jwtManager.CreateToken(entity.ID.String())
	if err != nil {
		h.logger.WithError(err).Error("failed to issue token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue token"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": entity})
}
