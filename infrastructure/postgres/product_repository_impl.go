package postgres

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gearshop/domain/dto"
	"gearshop/domain/models"
	"gearshop/domain/repositories"
)

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ลบ images ก่อน (cascade)
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Product{}).Error
	})
}

// ListWithFilters แปลง filter เป็น conjunctive WHERE พร้อม count + pagination
// filter ที่ไม่ match อะไรเลยคืน slice ว่าง ไม่ใช่ error
func (r *ProductRepositoryImpl) ListWithFilters(ctx context.Context, filter *dto.ProductFilter, limit, offset int) ([]*models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{}).
		Preload("Category").
		Preload("Brand")

	if filter != nil {
		if filter.CategoryID != nil {
			query = query.Where("category_id = ?", *filter.CategoryID)
		}

		if filter.BrandID != nil {
			query = query.Where("brand_id = ?", *filter.BrandID)
		}

		if filter.MinPrice != nil {
			query = query.Where("price >= ?", *filter.MinPrice)
		}

		if filter.MaxPrice != nil {
			query = query.Where("price <= ?", *filter.MaxPrice)
		}

		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}

		if filter.InStockOnly {
			query = query.Where("stock_quantity > 0")
		}

		// case-insensitive substring บน name OR description
		// ใช้ LOWER แทน ILIKE เพื่อให้รันได้ทั้ง postgres และ sqlite
		if filter.SearchQuery != "" {
			pattern := "%" + filter.SearchQuery + "%"
			query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
		}
	}

	// Count total ก่อน paginate
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit < 1 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	// id DESC เป็น tie-break กัน created_at ชนกัน
	var products []*models.Product
	err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

// GetPriceRange คืน MIN/MAX ราคาของ active products - found=false เมื่อไม่มีสินค้า
// query เดียวพอ เพราะ MIN เป็น NULL ก็แปลว่าตารางว่าง
func (r *ProductRepositoryImpl) GetPriceRange(ctx context.Context) (decimal.Decimal, decimal.Decimal, bool, error) {
	var min, max decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("MIN(price), MAX(price)").
		Where("status = ?", models.ProductStatusActive).
		Row().Scan(&min, &max)
	if err != nil {
		return decimal.Zero, decimal.Zero, false, err
	}
	if !min.Valid {
		return decimal.Zero, decimal.Zero, false, nil
	}

	return min.Decimal, max.Decimal, true, nil
}
