package routes

import (
	"github.com/gofiber/fiber/v2"

	"gearshop/interfaces/api/handlers"
	"gearshop/interfaces/api/middleware"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	categories := api.Group("/categories")

	// Public catalog
	categories.Get("/", h.CategoryHandler.ListCategories)
	categories.Get("/roots", h.CategoryHandler.ListRootCategories)
	categories.Get("/slug/:slug", h.CategoryHandler.GetCategoryBySlug)
	categories.Get("/slug/:slug/products", h.CategoryHandler.ListCategoryProducts)
	categories.Get("/:id", h.CategoryHandler.GetCategory)

	// Admin
	admin := categories.Group("", middleware.Protected(jwtSecret), middleware.AdminOnly())
	admin.Post("/", h.CategoryHandler.CreateCategory)
	admin.Put("/:id", h.CategoryHandler.UpdateCategory)
	admin.Delete("/:id", h.CategoryHandler.DeleteCategory)
}
