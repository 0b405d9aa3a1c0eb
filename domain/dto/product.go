package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"gearshop/domain/models"
)

// === Filter ===

// ProductFilter เงื่อนไขคัดกรองสินค้า - ทุก field เป็น optional, AND กันหมด
type ProductFilter struct {
	CategoryID  *uint                `json:"categoryId"`
	BrandID     *uint                `json:"brandId"`
	MinPrice    *decimal.Decimal     `json:"minPrice"`
	MaxPrice    *decimal.Decimal     `json:"maxPrice"`
	Status      models.ProductStatus `json:"status"`
	InStockOnly bool                 `json:"inStockOnly"`
	SearchQuery string               `json:"searchQuery"`
}

// === Requests ===

type CreateProductRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=200"`
	Description    string           `json:"description" validate:"max=2000"`
	SKU            string           `json:"sku" validate:"required,min=1,max=50"`
	Price          decimal.Decimal  `json:"price" validate:"required"`
	OriginalPrice  *decimal.Decimal `json:"originalPrice"`
	CategoryID     *uint            `json:"categoryId"`
	BrandID        *uint            `json:"brandId"`
	Specifications models.JSONMap   `json:"specifications"`
	Features       []string         `json:"features"`
	StockQuantity  int              `json:"stockQuantity" validate:"min=0"`
	MinStockLevel  int              `json:"minStockLevel" validate:"min=0"`
	Slug           string           `json:"slug" validate:"required,min=1,max=200"`
}

type UpdateProductRequest struct {
	Name           *string               `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string               `json:"description" validate:"omitempty,max=2000"`
	Price          *decimal.Decimal      `json:"price"`
	OriginalPrice  *decimal.Decimal      `json:"originalPrice"`
	Status         *models.ProductStatus `json:"status" validate:"omitempty,oneof=active out_of_stock discontinued"`
	CategoryID     *uint                 `json:"categoryId"`
	BrandID        *uint                 `json:"brandId"`
	Specifications models.JSONMap        `json:"specifications"`
	Features       []string              `json:"features"`
	StockQuantity  *int                  `json:"stockQuantity" validate:"omitempty,min=0"`
	MinStockLevel  *int                  `json:"minStockLevel" validate:"omitempty,min=0"`
	Slug           *string               `json:"slug" validate:"omitempty,min=1,max=200"`
}

type CreateProductImageRequest struct {
	ImageURL     string `json:"imageUrl" validate:"required,url,max=500"`
	AltText      string `json:"altText" validate:"max=200"`
	IsPrimary    bool   `json:"isPrimary"`
	DisplayOrder int    `json:"displayOrder"`
}

// === Responses ===

// ProductSummary projection สำหรับหน้า listing - build ต่อ query ไม่ persist
type ProductSummary struct {
	ID              uint                 `json:"id"`
	Name            string               `json:"name"`
	Price           decimal.Decimal      `json:"price"`
	OriginalPrice   *decimal.Decimal     `json:"originalPrice"`
	Status          models.ProductStatus `json:"status"`
	PrimaryImageURL *string              `json:"primaryImageUrl"`
	CategoryName    *string              `json:"categoryName"`
	BrandName       *string              `json:"brandName"`
	StockQuantity   int                  `json:"stockQuantity"`
	CreatedAt       string               `json:"createdAt"`
}

type ProductResponse struct {
	ID              uint                 `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	SKU             string               `json:"sku"`
	Price           decimal.Decimal      `json:"price"`
	OriginalPrice   *decimal.Decimal     `json:"originalPrice"`
	Status          models.ProductStatus `json:"status"`
	CategoryID      *uint                `json:"categoryId"`
	BrandID         *uint                `json:"brandId"`
	CategoryName    *string              `json:"categoryName"`
	BrandName       *string              `json:"brandName"`
	Specifications  models.JSONMap       `json:"specifications"`
	Features        []string             `json:"features"`
	StockQuantity   int                  `json:"stockQuantity"`
	MinStockLevel   int                  `json:"minStockLevel"`
	Slug            string               `json:"slug"`
	MetaTitle       *string              `json:"metaTitle"`
	MetaDescription *string              `json:"metaDescription"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type ProductImageResponse struct {
	ID           uint   `json:"id"`
	ProductID    uint   `json:"productId"`
	ImageURL     string `json:"imageUrl"`
	AltText      string `json:"altText"`
	IsPrimary    bool   `json:"isPrimary"`
	DisplayOrder int    `json:"displayOrder"`
}

type PriceRangeResponse struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// === Mappers ===

func ProductToProductResponse(product *models.Product) *ProductResponse {
	if product == nil {
		return nil
	}
	resp := &ProductResponse{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		SKU:             product.SKU,
		Price:           product.Price,
		OriginalPrice:   product.OriginalPrice,
		Status:          product.Status,
		CategoryID:      product.CategoryID,
		BrandID:         product.BrandID,
		Specifications:  product.Specifications,
		Features:        product.Features,
		StockQuantity:   product.StockQuantity,
		MinStockLevel:   product.MinStockLevel,
		Slug:            product.Slug,
		MetaTitle:       product.MetaTitle,
		MetaDescription: product.MetaDescription,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
	if product.Category != nil {
		resp.CategoryName = &product.Category.Name
	}
	if product.Brand != nil {
		resp.BrandName = &product.Brand.Name
	}
	return resp
}

// ProductToSummary แปลง product เป็น summary - primary image URL มาจาก batched lookup
func ProductToSummary(product *models.Product, primaryImageURL *string) ProductSummary {
	summary := ProductSummary{
		ID:              product.ID,
		Name:            product.Name,
		Price:           product.Price,
		OriginalPrice:   product.OriginalPrice,
		Status:          product.Status,
		PrimaryImageURL: primaryImageURL,
		StockQuantity:   product.StockQuantity,
		CreatedAt:       product.CreatedAt.Format(time.RFC3339),
	}
	if product.Category != nil {
		summary.CategoryName = &product.Category.Name
	}
	if product.Brand != nil {
		summary.BrandName = &product.Brand.Name
	}
	return summary
}

func ImageToImageResponse(image *models.ProductImage) *ProductImageResponse {
	if image == nil {
		return nil
	}
	return &ProductImageResponse{
		ID:           image.ID,
		ProductID:    image.ProductID,
		ImageURL:     image.ImageURL,
		AltText:      image.AltText,
		IsPrimary:    image.IsPrimary,
		DisplayOrder: image.DisplayOrder,
	}
}

func ImagesToImageResponses(images []*models.ProductImage) []ProductImageResponse {
	responses := make([]ProductImageResponse, len(images))
	for i, image := range images {
		responses[i] = *ImageToImageResponse(image)
	}
	return responses
}
