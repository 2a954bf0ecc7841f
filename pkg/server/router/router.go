package router

import "github.com/gofiber/fiber/v2"

// ServerRouter registers a route tree on a fiber app.
type ServerRouter interface {
	BuildRoutes(router *fiber.App) error
}
