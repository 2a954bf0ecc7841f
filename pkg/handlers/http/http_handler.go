package http

import "github.com/gofiber/fiber/v2"

const ErrInvalidJsonPayload = "invalid json payload"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Auth
	RegisterHandler Handler
	LoginHandler    Handler

	// Shipment
	CreateShipmentHandler Handler
	ListShipmentsHandler  Handler
	GetShipmentHandler    Handler
	UpdateShipmentHandler Handler
	DeleteShipmentHandler Handler

	// Tracking
	ListTrackingEventsHandler Handler
	AddTrackingEventHandler   Handler

	// Carrier
	ListCarriersHandler Handler

	// Integration
	CreateIntegrationHandler Handler
	ListIntegrationsHandler  Handler
	DeleteIntegrationHandler Handler
	SyncIntegrationHandler   Handler
	ListProductsHandler      Handler

	// Misc
	GetVersionHandler Handler
}
