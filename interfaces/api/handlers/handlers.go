package handlers

import (
	"gearshop/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	ProductService  services.ProductService
	CategoryService services.CategoryService
	BrandService    services.BrandService
	AuthService     services.AuthService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
	BrandHandler    *BrandHandler
	AuthHandler     *AuthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		ProductHandler:  NewProductHandler(services.ProductService),
		CategoryHandler: NewCategoryHandler(services.CategoryService, services.ProductService),
		BrandHandler:    NewBrandHandler(services.BrandService),
		AuthHandler:     NewAuthHandler(services.AuthService),
	}
}
