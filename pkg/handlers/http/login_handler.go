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

type loginHandler struct {
	logger        *logrus.Logger
	guard         *ratelimit.Guard
	authenticator appUser.Authenticator
	jwtManager    jwt.Manager
}

func NewLoginHandler(
	logger *logrus.Logger,
	guard *ratelimit.Guard,
	authenticator appUser.Authenticator,
	jwtManager jwt.Manager,
) Handler {
	return &loginHandler{
		logger:        logger,
		guard:         guard,
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// Handle @Summary Log in
// @Description Exchanges credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Token and user"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Router /api/v1/auth/login [post]
func (h *loginHandler) Handle(c *fiber.Ctx) error {
	// Admission happens before credential checks so a brute-force run burns
	// its quota even on failures.
	if res := h.guard.Admit(ratelimit.OpLogin, c.IP()); !res.Allowed {
		return rateLimited(c, h.guard, ratelimit.OpLogin)
	}

	var req request.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity, err := h.authenticator.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to authenticate user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to authenticate"})
	}

	token, err := h.jwtManager.CreateToken(entity.ID.String())
	if err != nil {
		h.logger.WithError(err).Error("failed to issue token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token, "user": entity})
}
