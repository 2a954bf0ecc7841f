package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/go-redis/redismock/v8"
	"github.com/parceltrack/parceltrack/pkg/cache"
	"github.com/parceltrack/parceltrack/pkg/common"
	domainCarrier "github.com/parceltrack/parceltrack/pkg/domain/carrier"
	carrierMocks "github.com/parceltrack/parceltrack/pkg/domain/carrier/mocks"
	shipmentMocks "github.com/parceltrack/parceltrack/pkg/domain/shipment/mocks"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestGuard() *ratelimit.Guard {
	return ratelimit.NewGuard(logrus.New(), ratelimit.NewLimiter(nil))
}

// newTestCache backs the cache with a mock client carrying no expectations;
// every redis command fails and handlers fall through to the repository.
func newTestCache() *cache.Cache {
	db, _ := redismock.NewClientMock()
	return cache.NewCacheWithClient(db)
}

func gormNotFound() error {
	return gorm.ErrRecordNotFound
}

func newAuthedApp(userID uuid.UUID, method, path string, handler Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.UserIDContextKey, userID.String())
		return c.Next()
	})
	app.Add(method, path, handler.Handle)
	return app
}

func TestCreateShipmentHandler_Success(t *testing.T) {
	userID := uuid.New()
	shipmentRepo := new(shipmentMocks.Repository)
	carrierRepo := new(carrierMocks.Repository)

	carrierRepo.On("GetByCode", mock.Anything, "ups").Return(&domainCarrier.Carrier{
		ID:   uuid.New(),
		Code: "ups",
		Name: "UPS",
	}, nil)
	shipmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewCreateShipmentHandler(
		logrus.New(), newTestGuard(), shipmentRepo, carrierRepo, newTestCache(),
	)
	app := newAuthedApp(userID, fiber.MethodPost, "/api/v1/shipments", handler)

	body, err := json.Marshal(map[string]string{
		"carrier_code":    "ups",
		"tracking_number": "1Z999AA10123456784",
		"title":           "Desk lamp",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/shipments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	shipmentRepo.AssertExpectations(t)
}

func TestCreateShipmentHandler_RateLimited(t *testing.T) {
	userID := uuid.New()
	shipmentRepo := new(shipmentMocks.Repository)
	carrierRepo := new(carrierMocks.Repository)

	guard := newTestGuard()
	guard.ApplyOverrides(map[string]interface{}{
		"write": map[string]interface{}{"window": "1m", "quota": 1},
	})

	carrierRepo.On("GetByCode", mock.Anything, "ups").Return(&domainCarrier.Carrier{
		ID:   uuid.New(),
		Code: "ups",
	}, nil)
	shipmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	handler := NewCreateShipmentHandler(
		logrus.New(), guard, shipmentRepo, carrierRepo, newTestCache(),
	)
	app := newAuthedApp(userID, fiber.MethodPost, "/api/v1/shipments", handler)

	body, err := json.Marshal(map[string]string{
		"carrier_code":    "ups",
		"tracking_number": "1Z999AA10123456784",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/shipments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest("POST", "/api/v1/shipments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get(fiber.HeaderRetryAfter))

	// The repository must not have been touched on the rejected call.
	shipmentRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateShipmentHandler_UnknownCarrier(t *testing.T) {
	userID := uuid.New()
	shipmentRepo := new(shipmentMocks.Repository)
	carrierRepo := new(carrierMocks.Repository)

	carrierRepo.On("GetByCode", mock.Anything, "nopost").Return(nil, gormNotFound())

	handler := NewCreateShipmentHandler(
		logrus.New(), newTestGuard(), shipmentRepo, carrierRepo, newTestCache(),
	)
	app := newAuthedApp(userID, fiber.MethodPost, "/api/v1/shipments", handler)

	body, _ := json.Marshal(map[string]string{
		"carrier_code":    "nopost",
		"tracking_number": "X1",
	})
	req := httptest.NewRequest("POST", "/api/v1/shipments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	shipmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
