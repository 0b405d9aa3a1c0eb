package services

import (
	"context"

	"gearshop/domain/dto"
	"gearshop/domain/models"
)

type BrandService interface {
	// Create สร้าง brand ใหม่ (admin)
	Create(ctx context.Context, req *dto.CreateBrandRequest) (*models.Brand, error)

	// GetByID ดึง brand ตาม ID
	GetByID(ctx context.Context, id uint) (*models.Brand, error)

	// Update อัปเดต brand (admin)
	Update(ctx context.Context, id uint, req *dto.UpdateBrandRequest) (*models.Brand, error)

	// Delete ลบ brand (admin)
	Delete(ctx context.Context, id uint) error

	// List ดึง active brands เรียงตามชื่อ
	List(ctx context.Context) ([]*models.Brand, error)

	// GetProductCounts ดึงจำนวนสินค้า active ของแต่ละ brand
	GetProductCounts(ctx context.Context) (map[uint]int64, error)
}
