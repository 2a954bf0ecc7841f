package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	userMocks "github.com/parceltrack/parceltrack/pkg/app/user/mocks"
	"github.com/parceltrack/parceltrack/pkg/config"
	"github.com/parceltrack/parceltrack/pkg/domain"
	domainUser "github.com/parceltrack/parceltrack/pkg/domain/user"
	"github.com/parceltrack/parceltrack/pkg/infra/jwt"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loginBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"email":    "user@example.com",
		"password": "hunter2hunter2",
	})
	require.NoError(t, err)
	return body
}

func newJWTManager() jwt.Manager {
	return jwt.NewManager(&config.ServerConfig{SecretKey: "test-secret"})
}

func TestLoginHandler_Success(t *testing.T) {
	authenticator := new(userMocks.Authenticator)
	authenticator.On("Authenticate", mock.Anything, "user@example.com", "hunter2hunter2").
		Return(&domainUser.User{ID: uuid.New(), Email: "user@example.com"}, nil)

	handler := NewLoginHandler(logrus.New(), newTestGuard(), authenticator, newJWTManager())
	app := fiber.New()
	app.Post("/api/v1/auth/login", handler.Handle)

	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(loginBody(t)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(t, payload["token"])
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	authenticator := new(userMocks.Authenticator)
	authenticator.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidCredentials)

	handler := NewLoginHandler(logrus.New(), newTestGuard(), authenticator, newJWTManager())
	app := fiber.New()
	app.Post("/api/v1/auth/login", handler.Handle)

	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(loginBody(t)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginHandler_RateLimitedPerClientIP(t *testing.T) {
	authenticator := new(userMocks.Authenticator)
	authenticator.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidCredentials)

	handler := NewLoginHandler(logrus.New(), newTestGuard(), authenticator, newJWTManager())
	app := fiber.New()
	app.Post("/api/v1/auth/login", handler.Handle)

	// Quota for the auth tier is 5 per minute; failed attempts burn it too.
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(loginBody(t)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}

	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(loginBody(t)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get(fiber.HeaderRetryAfter))
	authenticator.AssertNumberOfCalls(t, "Authenticate", 5)
}
