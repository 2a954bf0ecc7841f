package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	syncerMocks "github.com/parceltrack/parceltrack/pkg/app/integration/mocks"
	domainIntegration "github.com/parceltrack/parceltrack/pkg/domain/integration"
	integrationMocks "github.com/parceltrack/parceltrack/pkg/domain/integration/mocks"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncIntegrationHandler_Success(t *testing.T) {
	userID := uuid.New()
	integrationID := uuid.New()
	repo := new(integrationMocks.Repository)
	syncer := new(syncerMocks.ProductSyncer)

	repo.On("Get", mock.Anything, userID, integrationID).Return(&domainIntegration.Integration{
		ID:       integrationID,
		UserID:   userID,
		Platform: domainIntegration.PlatformShopify,
	}, nil)
	syncer.On("Sync", mock.Anything, mock.Anything).Return(42, nil)

	handler := NewSyncIntegrationHandler(logrus.New(), newTestGuard(), repo, syncer)
	app := newAuthedApp(userID, fiber.MethodPost, "/api/v1/integrations/:integration_id/sync", handler)

	req := httptest.NewRequest("POST", "/api/v1/integrations/"+integrationID.String()+"/sync", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	syncer.AssertExpectations(t)
}

func TestSyncIntegrationHandler_RateLimitScopedPerIntegration(t *testing.T) {
	userID := uuid.New()
	integrationA := uuid.New()
	integrationB := uuid.New()
	repo := new(integrationMocks.Repository)
	syncer := new(syncerMocks.ProductSyncer)

	repo.On("Get", mock.Anything, userID, mock.Anything).Return(&domainIntegration.Integration{
		UserID:   userID,
		Platform: domainIntegration.PlatformShopify,
	}, nil)
	syncer.On("Sync", mock.Anything, mock.Anything).Return(0, nil)

	guard := ratelimit.NewGuard(logrus.New(), ratelimit.NewLimiter(nil))
	handler := NewSyncIntegrationHandler(logrus.New(), guard, repo, syncer)
	app := newAuthedApp(userID, fiber.MethodPost, "/api/v1/integrations/:integration_id/sync", handler)

	syncURL := func(id uuid.UUID) string {
		return "/api/v1/integrations/" + id.String() + "/sync"
	}

	// Sync tier allows 2 per 5 minutes per integration.
	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", syncURL(integrationA), nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("POST", syncURL(integrationA), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "300", resp.Header.Get(fiber.HeaderRetryAfter))

	// A different integration of the same user still has its own budget.
	resp, err = app.Test(httptest.NewRequest("POST", syncURL(integrationB), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The exhausted integration never reached the syncer on the rejected call.
	syncer.AssertNumberOfCalls(t, "Sync", 3)
}

func TestSyncIntegrationHandler_SyncFailureIsBadGateway(t *testing.T) {
	userID := uuid.New()
	integrationID := uuid.New()
	repo := new(integrationMocks.Repository)
	syncer := new(syncerMocks.ProductSyncer)

	repo.On("Get", mock.Anything, userID, integrationID).Return(&domainIntegration.Integration{
		ID:       integrationID,
		UserID:   userID,
		Platform: domainIntegration.PlatformShopify,
	}, nil)
	syncer.On("Sync", mock.Anything, mock.Anything).Return(0, assert.AnError)

	handler := NewSyncIntegrationHandler(logrus.New(), newTestGuard(), repo, syncer)
	app := newAuthedApp(userID, fiber.MethodPost, "/api/v1/integrations/:integration_id/sync", handler)

	req := httptest.NewRequest("POST", "/api/v1/integrations/"+integrationID.String()+"/sync", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
