package dto

import (
	"time"

	"gearshop/domain/models"
)

// === Requests ===

type CreateBrandRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"max=500"`
	LogoURL     *string `json:"logoUrl" validate:"omitempty,url,max=500"`
	WebsiteURL  *string `json:"websiteUrl" validate:"omitempty,url,max=500"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	LogoURL     *string `json:"logoUrl" validate:"omitempty,url,max=500"`
	WebsiteURL  *string `json:"websiteUrl" validate:"omitempty,url,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// === Responses ===

type BrandResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	LogoURL      *string   `json:"logoUrl"`
	WebsiteURL   *string   `json:"websiteUrl"`
	IsActive     bool      `json:"isActive"`
	ProductCount int64     `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BrandListResponse struct {
	Brands []BrandResponse `json:"brands"`
}

// === Mappers ===

func BrandToBrandResponse(brand *models.Brand) *BrandResponse {
	if brand == nil {
		return nil
	}
	return &BrandResponse{
		ID:          brand.ID,
		Name:        brand.Name,
		Description: brand.Description,
		LogoURL:     brand.LogoURL,
		WebsiteURL:  brand.WebsiteURL,
		IsActive:    brand.IsActive,
		CreatedAt:   brand.CreatedAt,
	}
}

func BrandsToBrandResponses(brands []*models.Brand) []BrandResponse {
	responses := make([]BrandResponse, len(brands))
	for i, brand := range brands {
		responses[i] = *BrandToBrandResponse(brand)
	}
	return responses
}
