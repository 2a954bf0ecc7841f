package integration

import (
	"context"
	"fmt"
	"time"

	domainIntegration "github.com/parceltrack/parceltrack/pkg/domain/integration"
	"github.com/parceltrack/parceltrack/pkg/infra/commerce"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=ProductSyncer --dir=. --output=./mocks --filename=product_syncer_mock.go --case=underscore --with-expecter
type ProductSyncer interface {
	Sync(ctx context.Context, integ *domainIntegration.Integration) (int, error)
}

type productSyncer struct {
	clients  map[string]commerce.Client
	repo     domainIntegration.Repository
	products domainIntegration.ProductRepository
	logger   *logrus.Logger
}

func NewProductSyncer(
	clients []commerce.Client,
	repository domainIntegration.Repository,
	products domainIntegration.ProductRepository,
	logger *logrus.Logger,
) ProductSyncer {
	byPlatform := make(map[string]commerce.Client, len(clients))
	for _, c := range clients {
		byPlatform[c.Platform()] = c
	}
	return &productSyncer{
		clients:  byPlatform,
		repo:     repository,
		products: products,
		logger:   logger,
	}
}

// Sync pulls the remote catalog and mirrors it into the products table,
// returning the number of rows written. A fetch failure flips the integration
// to the error status so the UI can surface a broken connection.
func (s *productSyncer) Sync(ctx context.Context, integ *domainIntegration.Integration) (int, error) {
	client, ok := s.clients[integ.Platform]
	if !ok {
		return 0, fmt.Errorf("no commerce client registered for platform %s", integ.Platform)
	}

	remote, err := client.FetchProducts(ctx, commerce.Credentials{
		ShopDomain:  integ.ShopDomain,
		AccessToken: integ.AccessToken,
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"integration_id": integ.ID,
			"platform":       integ.Platform,
		}).Error("failed to fetch remote products")
		integ.Status = domainIntegration.StatusError
		if updateErr := s.repo.Update(ctx, integ); updateErr != nil {
			s.logger.WithError(updateErr).Error("failed to mark integration as errored")
		}
		return 0, fmt.Errorf("fetch products from %s: %w", integ.Platform, err)
	}

	now := time.Now()
	synced := 0
	for _, rp := range remote {
		product := &domainIntegration.Product{
			IntegrationID: integ.ID,
			ExternalID:    rp.ExternalID,
			Title:         rp.Title,
			PriceCents:    rp.PriceCents,
			Currency:      rp.Currency,
			Inventory:     rp.Inventory,
			SyncedAt:      now,
		}
		if err := s.products.Upsert(ctx, product); err != nil {
			s.logger.WithError(err).WithField("external_id", rp.ExternalID).Error("failed to upsert product")
			continue
		}
		synced++
	}

	integ.Status = domainIntegration.StatusConnected
	integ.LastSyncedAt = &now
	if err := s.repo.Update(ctx, integ); err != nil {
		return synced, fmt.Errorf("update integration after sync: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"integration_id": integ.ID,
		"platform":       integ.Platform,
		"synced":         synced,
	}).Info("product sync completed")

	return synced, nil
}
