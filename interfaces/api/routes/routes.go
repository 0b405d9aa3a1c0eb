package routes

import (
	"github.com/gofiber/fiber/v2"

	"gearshop/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	// Setup health and root routes
	SetupHealthRoutes(app)

	// API version group
	api := app.Group("/api/v1")

	// Setup all route groups
	SetupAuthRoutes(api, h)
	SetupProductRoutes(api, h, jwtSecret)
	SetupCategoryRoutes(api, h, jwtSecret)
	SetupBrandRoutes(api, h, jwtSecret)
}
