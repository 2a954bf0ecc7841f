package integration_test

import (
	"context"
	"errors"
	"testing"

	appIntegration "github.com/parceltrack/parceltrack/pkg/app/integration"
	domainIntegration "github.com/parceltrack/parceltrack/pkg/domain/integration"
	integrationMocks "github.com/parceltrack/parceltrack/pkg/domain/integration/mocks"
	"github.com/parceltrack/parceltrack/pkg/infra/commerce"
	commerceMocks "github.com/parceltrack/parceltrack/pkg/infra/commerce/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConnectedIntegration() *domainIntegration.Integration {
	return &domainIntegration.Integration{
		Platform:    domainIntegration.PlatformShopify,
		ShopDomain:  "demo.myshopify.com",
		AccessToken: "shpat_test",
		Status:      domainIntegration.StatusConnected,
	}
}

func TestProductSyncer_Sync(t *testing.T) {
	client := new(commerceMocks.Client)
	repo := new(integrationMocks.Repository)
	products := new(integrationMocks.ProductRepository)

	client.On("Platform").Return(domainIntegration.PlatformShopify)
	client.On("FetchProducts", mock.Anything, commerce.Credentials{
		ShopDomain:  "demo.myshopify.com",
		AccessToken: "shpat_test",
	}).Return([]commerce.RemoteProduct{
		{ExternalID: "p-1", Title: "Mug", PriceCents: 1299, Currency: "USD", Inventory: 10},
		{ExternalID: "p-2", Title: "Shirt", PriceCents: 2599, Currency: "USD", Inventory: 3},
	}, nil)
	products.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domainIntegration.Product) bool {
		return p.ExternalID != "" && !p.SyncedAt.IsZero()
	})).Return(nil).Twice()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	syncer := appIntegration.NewProductSyncer(
		[]commerce.Client{client}, repo, products, logrus.New(),
	)

	integ := newConnectedIntegration()
	n, err := syncer.Sync(context.Background(), integ)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, domainIntegration.StatusConnected, integ.Status)
	require.NotNil(t, integ.LastSyncedAt)
	products.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestProductSyncer_FetchFailureMarksIntegrationErrored(t *testing.T) {
	client := new(commerceMocks.Client)
	repo := new(integrationMocks.Repository)
	products := new(integrationMocks.ProductRepository)

	client.On("Platform").Return(domainIntegration.PlatformShopify)
	client.On("FetchProducts", mock.Anything, mock.Anything).
		Return(nil, errors.New("401 unauthorized"))
	repo.On("Update", mock.Anything, mock.MatchedBy(func(i *domainIntegration.Integration) bool {
		return i.Status == domainIntegration.StatusError
	})).Return(nil)

	syncer := appIntegration.NewProductSyncer(
		[]commerce.Client{client}, repo, products, logrus.New(),
	)

	integ := newConnectedIntegration()
	n, err := syncer.Sync(context.Background(), integ)

	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Nil(t, integ.LastSyncedAt)
	products.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestProductSyncer_UnknownPlatform(t *testing.T) {
	repo := new(integrationMocks.Repository)
	products := new(integrationMocks.ProductRepository)

	syncer := appIntegration.NewProductSyncer(nil, repo, products, logrus.New())

	integ := newConnectedIntegration()
	integ.Platform = "etsy"
	_, err := syncer.Sync(context.Background(), integ)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "etsy")
}

func TestProductSyncer_UpsertFailureSkipsRow(t *testing.T) {
	client := new(commerceMocks.Client)
	repo := new(integrationMocks.Repository)
	products := new(integrationMocks.ProductRepository)

	client.On("Platform").Return(domainIntegration.PlatformShopify)
	client.On("FetchProducts", mock.Anything, mock.Anything).Return([]commerce.RemoteProduct{
		{ExternalID: "bad"},
		{ExternalID: "good"},
	}, nil)
	products.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domainIntegration.Product) bool {
		return p.ExternalID == "bad"
	})).Return(errors.New("constraint violation"))
	products.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domainIntegration.Product) bool {
		return p.ExternalID == "good"
	})).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	syncer := appIntegration.NewProductSyncer(
		[]commerce.Client{client}, repo, products, logrus.New(),
	)

	n, err := syncer.Sync(context.Background(), newConnectedIntegration())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
