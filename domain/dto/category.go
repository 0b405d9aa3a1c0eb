package dto

import (
	"time"

	"gearshop/domain/models"
)

// === Requests ===

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Slug        string `json:"slug" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	ParentID    *uint  `json:"parentId"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	ParentID    *uint   `json:"parentId"`
	IsActive    *bool   `json:"isActive"`
}

// === Responses ===

type CategoryResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	ParentID     *uint     `json:"parentId"`
	IsActive     bool      `json:"isActive"`
	ProductCount int64     `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// === Mappers ===

func CategoryToCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		ParentID:    category.ParentID,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
	}
}

func CategoriesToCategoryResponses(categories []*models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToCategoryResponse(category)
	}
	return responses
}
