package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	appCarrier "github.com/parceltrack/parceltrack/pkg/app/carrier"
	appIntegration "github.com/parceltrack/parceltrack/pkg/app/integration"
	appUser "github.com/parceltrack/parceltrack/pkg/app/user"
	"github.com/parceltrack/parceltrack/pkg/cache"
	"github.com/parceltrack/parceltrack/pkg/common"
	"github.com/parceltrack/parceltrack/pkg/config"
	domainCarrier "github.com/parceltrack/parceltrack/pkg/domain/carrier"
	domainIntegration "github.com/parceltrack/parceltrack/pkg/domain/integration"
	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
	"github.com/parceltrack/parceltrack/pkg/domain/tracking"
	"github.com/parceltrack/parceltrack/pkg/domain/user"
	handlers "github.com/parceltrack/parceltrack/pkg/handlers/http"
	"github.com/parceltrack/parceltrack/pkg/infra/commerce"
	"github.com/parceltrack/parceltrack/pkg/infra/commerce/shopify"
	"github.com/parceltrack/parceltrack/pkg/infra/commerce/tiktok"
	"github.com/parceltrack/parceltrack/pkg/infra/database"
	"github.com/parceltrack/parceltrack/pkg/infra/jwt"
	infraLogger "github.com/parceltrack/parceltrack/pkg/infra/logger"
	"github.com/parceltrack/parceltrack/pkg/infra/repository"
	"github.com/parceltrack/parceltrack/pkg/middleware"
	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/parceltrack/parceltrack/pkg/server"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	},
		&user.User{},
		&domainCarrier.Carrier{},
		&shipment.Shipment{},
		&tracking.Event{},
		&domainIntegration.Integration{},
		&domainIntegration.Product{},
	)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheInstance, err := cache.NewCache(common.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatalf("failed to initialize cache: %v", err)
	}

	// rate limiting
	limiter := ratelimit.NewLimiter(&ratelimit.LimiterOpts{
		SweepInterval: sweepInterval(cfg, logger),
	})
	limiter.StartSweeper()
	defer limiter.Stop()

	guard := ratelimit.NewGuard(logger, limiter)
	guard.ApplyOverrides(cfg.RateLimit.Tiers)

	// repository
	userRepository := repository.NewUserRepository(db.DB)
	carrierRepository := repository.NewCarrierRepository(db.DB)
	shipmentRepository := repository.NewShipmentRepository(db.DB)
	trackingEventRepository := repository.NewTrackingEventRepository(db.DB)
	integrationRepository := repository.NewIntegrationRepository(db.DB)
	productRepository := repository.NewProductRepository(db.DB)

	if err := seedCarriers(ctx, carrierRepository); err != nil {
		logger.Fatalf("failed to seed carriers: %v", err)
	}

	// commerce clients
	shopifyClient := shopify.NewClient(
		cfg.Commerce.Shopify.BaseURL,
		time.Duration(cfg.Commerce.Shopify.TimeoutSeconds)*time.Second,
	)
	tiktokClient := tiktok.NewClient(
		cfg.Commerce.TikTok.BaseURL,
		time.Duration(cfg.Commerce.TikTok.TimeoutSeconds)*time.Second,
	)

	// service
	jwtManager := jwt.NewManager(&cfg.Server)
	registrar := appUser.NewRegistrar(userRepository, logger)
	authenticator := appUser.NewAuthenticator(userRepository, logger)
	carrierFinder := appCarrier.NewFinder(carrierRepository, cacheInstance, logger)
	productSyncer := appIntegration.NewProductSyncer(
		[]commerce.Client{shopifyClient, tiktokClient},
		integrationRepository,
		productRepository,
		logger,
	)

	// middleware
	middlewareTransport := middleware.Transport{
		AuthMiddleware: middleware.NewAuthMiddleware(logger, jwtManager),
	}

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		// Auth
		RegisterHandler: handlers.NewRegisterHandler(logger, guard, registrar, jwtManager),
		LoginHandler:    handlers.NewLoginHandler(logger, guard, authenticator, jwtManager),
		// Shipment
		CreateShipmentHandler: handlers.NewCreateShipmentHandler(logger, guard, shipmentRepository, carrierRepository, cacheInstance),
		ListShipmentsHandler:  handlers.NewListShipmentsHandler(logger, shipmentRepository),
		GetShipmentHandler:    handlers.NewGetShipmentHandler(logger, shipmentRepository, cacheInstance),
		UpdateShipmentHandler: handlers.NewUpdateShipmentHandler(logger, guard, shipmentRepository, cacheInstance),
		DeleteShipmentHandler: handlers.NewDeleteShipmentHandler(logger, guard, shipmentRepository, cacheInstance),
		// Tracking
		ListTrackingEventsHandler: handlers.NewListTrackingEventsHandler(logger, shipmentRepository, trackingEventRepository),
		AddTrackingEventHandler:   handlers.NewAddTrackingEventHandler(logger, guard, shipmentRepository, trackingEventRepository, cacheInstance),
		// Carrier
		ListCarriersHandler: handlers.NewListCarriersHandler(logger, carrierFinder),
		// Integration
		CreateIntegrationHandler: handlers.NewCreateIntegrationHandler(logger, guard, integrationRepository),
		ListIntegrationsHandler:  handlers.NewListIntegrationsHandler(logger, integrationRepository),
		DeleteIntegrationHandler: handlers.NewDeleteIntegrationHandler(logger, guard, integrationRepository),
		SyncIntegrationHandler:   handlers.NewSyncIntegrationHandler(logger, guard, integrationRepository, productSyncer),
		ListProductsHandler:      handlers.NewListProductsHandler(logger, integrationRepository, productRepository),
		// Misc
		GetVersionHandler: handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewApiServer(server.ApiServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}

func sweepInterval(cfg *config.Config, logger *logrus.Logger) time.Duration {
	if cfg.RateLimit.SweepInterval == "" {
		return ratelimit.DefaultSweepInterval
	}
	d, err := time.ParseDuration(cfg.RateLimit.SweepInterval)
	if err != nil || d <= 0 {
		logger.Warnf("invalid ratelimit.sweep_interval %q, using default", cfg.RateLimit.SweepInterval)
		return ratelimit.DefaultSweepInterval
	}
	return d
}

// seedCarriers keeps the carrier reference table in sync with the supported
// set. Upserts keyed by code make restarts idempotent.
func seedCarriers(ctx context.Context, repo domainCarrier.Repository) error {
	seed := []domainCarrier.Carrier{
		{Code: "ups", Name: "UPS", TrackingURL: "https://www.ups.com/track?tracknum=%s"},
		{Code: "fedex", Name: "FedEx", TrackingURL: "https://www.fedex.com/fedextrack/?trknbr=%s"},
		{Code: "usps", Name: "USPS", TrackingURL: "https://tools.usps.com/go/TrackConfirmAction?tLabels=%s"},
		{Code: "dhl", Name: "DHL", TrackingURL: "https://www.dhl.com/en/express/tracking.html?AWB=%s"},
	}
	for i := range seed {
		if err := repo.Upsert(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}
