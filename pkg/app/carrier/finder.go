package carrier

import (
	"context"

	"github.com/parceltrack/parceltrack/pkg/cache"
	domainCarrier "github.com/parceltrack/parceltrack/pkg/domain/carrier"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=carrier_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	List(ctx context.Context) ([]domainCarrier.Carrier, error)
}

type finder struct {
	repo   domainCarrier.Repository
	cache  *cache.Cache
	logger *logrus.Logger
}

func NewFinder(
	repository domainCarrier.Repository,
	c *cache.Cache,
	logger *logrus.Logger,
) Finder {
	return &finder{
		repo:   repository,
		cache:  c,
		logger: logger,
	}
}

// List serves carriers cache-first; the table changes rarely and is read on
// every shipment form render.
func (f *finder) List(ctx context.Context) ([]domainCarrier.Carrier, error) {
	if carriers, err := f.cache.GetCarriers(ctx); err == nil && len(carriers) > 0 {
		return carriers, nil
	} else if err != nil {
		f.logger.WithError(err).Debug("cache read carriers failure")
	}

	carriers, err := f.repo.List(ctx)
	if err != nil {
		f.logger.WithError(err).Error("failed to fetch carriers from repository")
		return nil, err
	}

	if err := f.cache.SaveCarriers(ctx, carriers); err != nil {
		f.logger.WithError(err).Error("failed to cache carriers")
	}

	return carriers, nil
}
