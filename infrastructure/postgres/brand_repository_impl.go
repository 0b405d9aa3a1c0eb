package postgres

import (
	"context"

	"gorm.io/gorm"

	"gearshop/domain/models"
	"gearshop/domain/repositories"
)

type BrandRepositoryImpl struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) repositories.BrandRepository {
	return &BrandRepositoryImpl{db: db}
}

func (r *BrandRepositoryImpl) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *BrandRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepositoryImpl) GetByName(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepositoryImpl) Update(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *BrandRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Brand{}).Error
}

func (r *BrandRepositoryImpl) ListActive(ctx context.Context) ([]*models.Brand, error) {
	var brands []*models.Brand
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&brands).Error
	return brands, err
}

func (r *BrandRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Brand{}).Count(&count).Error
	return count, err
}

// GetProductCounts คืน map ของ brand_id -> จำนวนสินค้า active
func (r *BrandRepositoryImpl) GetProductCounts(ctx context.Context) (map[uint]int64, error) {
	type result struct {
		BrandID uint
		Count   int64
	}
	var results []result

	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("brand_id, COUNT(*) as count").
		Where("brand_id IS NOT NULL").
		Where("status = ?", models.ProductStatusActive).
		Group("brand_id").
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64)
	for _, r := range results {
		counts[r.BrandID] = r.Count
	}
	return counts, nil
}
