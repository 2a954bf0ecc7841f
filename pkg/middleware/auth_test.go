package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/parceltrack/parceltrack/pkg/common"
	"github.com/parceltrack/parceltrack/pkg/config"
	"github.com/parceltrack/parceltrack/pkg/infra/jwt"
	"github.com/parceltrack/parceltrack/pkg/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T) (*fiber.App, jwt.Manager) {
	t.Helper()
	manager := jwt.NewManager(&config.ServerConfig{SecretKey: "test-secret"})

	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(logrus.New(), manager).Middleware())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		userID, _ := c.Locals(common.UserIDContextKey).(string)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app, manager
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app, manager := newAuthApp(t)

	token, err := manager.CreateToken("2b1f7a3e-0000-0000-0000-000000000001")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
