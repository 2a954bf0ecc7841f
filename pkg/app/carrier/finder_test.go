package carrier_test

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v8"
	appCarrier "github.com/parceltrack/parceltrack/pkg/app/carrier"
	"github.com/parceltrack/parceltrack/pkg/cache"
	domainCarrier "github.com/parceltrack/parceltrack/pkg/domain/carrier"
	carrierMocks "github.com/parceltrack/parceltrack/pkg/domain/carrier/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinder_ListFallsBackToRepository(t *testing.T) {
	db, _ := redismock.NewClientMock()
	repo := new(carrierMocks.Repository)
	repo.On("List", mock.Anything).Return([]domainCarrier.Carrier{
		{Code: "ups", Name: "UPS"},
		{Code: "dhl", Name: "DHL"},
	}, nil)

	finder := appCarrier.NewFinder(repo, cache.NewCacheWithClient(db), logrus.New())

	carriers, err := finder.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, carriers, 2)
	repo.AssertExpectations(t)
}

func TestFinder_ListPropagatesRepositoryError(t *testing.T) {
	db, _ := redismock.NewClientMock()
	repo := new(carrierMocks.Repository)
	repo.On("List", mock.Anything).Return(nil, assert.AnError)

	finder := appCarrier.NewFinder(repo, cache.NewCacheWithClient(db), logrus.New())

	_, err := finder.List(context.Background())
	assert.Error(t, err)
}
