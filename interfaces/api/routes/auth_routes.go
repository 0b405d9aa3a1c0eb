package routes

import (
	"github.com/gofiber/fiber/v2"

	"gearshop/interfaces/api/handlers"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers) {
	auth := api.Group("/auth")
	auth.Post("/login", h.AuthHandler.Login)
}
