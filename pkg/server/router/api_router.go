package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	handlers "github.com/parceltrack/parceltrack/pkg/handlers/http"
	"github.com/parceltrack/parceltrack/pkg/middleware"
)

var ErrMissingAuthMiddleware = errors.New("missing auth middleware")

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewApiRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	if r.middlewareTransport.AuthMiddleware == nil {
		return ErrMissingAuthMiddleware
	}

	router.Get("/version", r.handlerTransport.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.Post("/register", r.handlerTransport.RegisterHandler.Handle)
			auth.Post("/login", r.handlerTransport.LoginHandler.Handle)
		}

		// Everything below requires a bearer token.
		protected := v1.Group("", r.middlewareTransport.AuthMiddleware.Middleware())

		protected.Get("/carriers", r.handlerTransport.ListCarriersHandler.Handle)

		shipments := protected.Group("/shipments")
		{
			shipments.Post("", r.handlerTransport.CreateShipmentHandler.Handle)
			shipments.Get("", r.handlerTransport.ListShipmentsHandler.Handle)
			shipments.Get("/:shipment_id", r.handlerTransport.GetShipmentHandler.Handle)
			shipments.Put("/:shipment_id", r.handlerTransport.UpdateShipmentHandler.Handle)
			shipments.Delete("/:shipment_id", r.handlerTransport.DeleteShipmentHandler.Handle)

			// Timeline (scoped to shipment)
			events := shipments.Group("/:shipment_id/events")
			{
				events.Get("", r.handlerTransport.ListTrackingEventsHandler.Handle)
				events.Post("", r.handlerTransport.AddTrackingEventHandler.Handle)
			}
		}

		integrations := protected.Group("/integrations")
		{
			integrations.Post("", r.handlerTransport.CreateIntegrationHandler.Handle)
			integrations.Get("", r.handlerTransport.ListIntegrationsHandler.Handle)
			integrations.Delete("/:integration_id", r.handlerTransport.DeleteIntegrationHandler.Handle)
			integrations.Post("/:integration_id/sync", r.handlerTransport.SyncIntegrationHandler.Handle)
			integrations.Get("/:integration_id/products", r.handlerTransport.ListProductsHandler.Handle)
		}
	}
	return nil
}
