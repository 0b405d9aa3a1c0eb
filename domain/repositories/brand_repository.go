package repositories

import (
	"context"

	"gearshop/domain/models"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id uint) (*models.Brand, error)
	GetByName(ctx context.Context, name string) (*models.Brand, error)
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id uint) error
	ListActive(ctx context.Context) ([]*models.Brand, error)
	Count(ctx context.Context) (int64, error)
	// GetProductCounts คืน map ของ brand_id -> จำนวนสินค้า active
	GetProductCounts(ctx context.Context) (map[uint]int64, error)
}
