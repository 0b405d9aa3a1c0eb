package services

import (
	"context"

	"gearshop/domain/dto"
	"gearshop/domain/models"
)

type CategoryService interface {
	// Create สร้าง category ใหม่ (admin)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)

	// GetByID ดึง category ตาม ID
	GetByID(ctx context.Context, id uint) (*models.Category, error)

	// GetBySlug ดึง category ตาม slug
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)

	// Update อัปเดต category (admin)
	Update(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*models.Category, error)

	// Delete ลบ category (admin)
	Delete(ctx context.Context, id uint) error

	// List ดึง active categories เรียงตามชื่อ
	List(ctx context.Context) ([]*models.Category, error)

	// ListRoots ดึง top-level categories
	ListRoots(ctx context.Context) ([]*models.Category, error)

	// GetProductCounts ดึงจำนวนสินค้า active ในแต่ละ category
	GetProductCounts(ctx context.Context) (map[uint]int64, error)
}
