package postgres

import (
	"context"

	"gorm.io/gorm"

	"gearshop/domain/models"
	"gearshop/domain/repositories"
)

type ProductImageRepositoryImpl struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) repositories.ProductImageRepository {
	return &ProductImageRepositoryImpl{db: db}
}

func (r *ProductImageRepositoryImpl) Create(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *ProductImageRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.ProductImage, error) {
	var image models.ProductImage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ProductImageRepositoryImpl) Update(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *ProductImageRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductImage{}).Error
}

func (r *ProductImageRepositoryImpl) ListByProduct(ctx context.Context, productID uint) ([]*models.ProductImage, error) {
	var images []*models.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("display_order ASC, id ASC").
		Find(&images).Error
	return images, err
}

// GetPrimaryURLs ดึง primary URL ของทั้ง page ใน query เดียว (เลี่ยง N+1)
// เรียง is_primary ก่อน แล้ว fallback เป็น display_order ต่ำสุด
func (r *ProductImageRepositoryImpl) GetPrimaryURLs(ctx context.Context, productIDs []uint) (map[uint]string, error) {
	urls := make(map[uint]string)
	if len(productIDs) == 0 {
		return urls, nil
	}

	var images []models.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("is_primary DESC, display_order ASC, id ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}

	// แถวแรกต่อ product ชนะ (primary มาก่อนตาม order)
	for _, img := range images {
		if _, ok := urls[img.ProductID]; !ok {
			urls[img.ProductID] = img.ImageURL
		}
	}
	return urls, nil
}
