package repositories

import (
	"context"

	"gearshop/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
	// ListActive ดึง categories ที่ is_active เรียงตามชื่อ
	ListActive(ctx context.Context) ([]*models.Category, error)
	// ListRoots ดึงเฉพาะ top-level (parent_id IS NULL) ที่ is_active
	ListRoots(ctx context.Context) ([]*models.Category, error)
	Count(ctx context.Context) (int64, error)
	// GetProductCounts คืน map ของ category_id -> จำนวนสินค้า active (GROUP BY เดียว)
	GetProductCounts(ctx context.Context) (map[uint]int64, error)
}
