package routes

import (
	"github.com/gofiber/fiber/v2"

	"gearshop/interfaces/api/handlers"
	"gearshop/interfaces/api/middleware"
)

func SetupBrandRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	brands := api.Group("/brands")

	// Public catalog
	brands.Get("/", h.BrandHandler.ListBrands)
	brands.Get("/:id", h.BrandHandler.GetBrand)

	// Admin
	admin := brands.Group("", middleware.Protected(jwtSecret), middleware.AdminOnly())
	admin.Post("/", h.BrandHandler.CreateBrand)
	admin.Put("/:id", h.BrandHandler.UpdateBrand)
	admin.Delete("/:id", h.BrandHandler.DeleteBrand)
}
