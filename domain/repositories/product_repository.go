package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"gearshop/domain/dto"
	"gearshop/domain/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	// ListWithFilters แปลง filter เป็น conjunctive WHERE + pagination
	// คืน products (preload Category/Brand) พร้อม total count ก่อน paginate
	ListWithFilters(ctx context.Context, filter *dto.ProductFilter, limit, offset int) ([]*models.Product, int64, error)
	Count(ctx context.Context) (int64, error)
	// GetPriceRange คืน min/max ของราคา active products
	// ถ้า catalog ว่าง คืน found=false ให้ caller ใช้ fallback
	GetPriceRange(ctx context.Context) (min, max decimal.Decimal, found bool, err error)
}

type ProductImageRepository interface {
	Create(ctx context.Context, image *models.ProductImage) error
	GetByID(ctx context.Context, id uint) (*models.ProductImage, error)
	Update(ctx context.Context, image *models.ProductImage) error
	Delete(ctx context.Context, id uint) error
	// ListByProduct ดึงรูปทั้งหมดของสินค้า เรียงตาม display_order
	ListByProduct(ctx context.Context, productID uint) ([]*models.ProductImage, error)
	// GetPrimaryURLs ดึง primary image URL ของหลาย product ใน query เดียว
	// fallback เป็นรูปแรกตาม display_order ถ้าไม่มีรูปไหนตั้ง is_primary
	GetPrimaryURLs(ctx context.Context, productIDs []uint) (map[uint]string, error)
}
