package routes

import (
	"github.com/gofiber/fiber/v2"

	"gearshop/interfaces/api/handlers"
	"gearshop/interfaces/api/middleware"
)

func SetupProductRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	products := api.Group("/products")

	// Public catalog
	// หมายเหตุ: static paths ต้องมาก่อน /:id ไม่งั้น fiber จับเป็น param
	products.Get("/", h.ProductHandler.ListProducts)
	products.Get("/featured", h.ProductHandler.FeaturedProducts)
	products.Get("/price-range", h.ProductHandler.PriceRange)
	products.Get("/search", h.ProductHandler.SearchProducts)
	products.Get("/slug/:slug", h.ProductHandler.GetProductBySlug)
	products.Get("/:id", h.ProductHandler.GetProduct)
	products.Get("/:id/images", h.ProductHandler.GetProductImages)
	products.Get("/:id/related", h.ProductHandler.RelatedProducts)

	// Admin
	admin := products.Group("", middleware.Protected(jwtSecret), middleware.AdminOnly())
	admin.Post("/", h.ProductHandler.CreateProduct)
	admin.Put("/:id", h.ProductHandler.UpdateProduct)
	admin.Delete("/:id", h.ProductHandler.DeleteProduct)
	admin.Post("/:id/images", h.ProductHandler.AddProductImage)
	admin.Delete("/:id/images/:imageId", h.ProductHandler.DeleteProductImage)
}
