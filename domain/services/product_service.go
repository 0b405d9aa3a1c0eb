package services

import (
	"context"

	"gearshop/domain/dto"
	"gearshop/domain/models"
)

type ProductService interface {
	// Create สร้างสินค้าใหม่ (admin)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error)

	// GetByID ดึงสินค้าตาม ID พร้อม relations
	GetByID(ctx context.Context, id uint) (*models.Product, error)

	// GetBySlug ดึงสินค้าตาม slug
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)

	// Update อัปเดตสินค้า (admin)
	Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*models.Product, error)

	// Delete ลบสินค้า - images ถูก cascade ตาม FK
	Delete(ctx context.Context, id uint) error

	// List ดึง summaries ตาม filter พร้อม total count
	List(ctx context.Context, filter *dto.ProductFilter, limit, offset int) ([]dto.ProductSummary, int64, error)

	// Search ค้นหาสินค้า active จาก name/description (case-insensitive substring)
	Search(ctx context.Context, query string, limit int) ([]dto.ProductSummary, error)

	// Featured สินค้าแนะนำ: active, มี stock, ราคาไม่เกิน threshold, ใหม่สุดก่อน
	Featured(ctx context.Context, limit int) ([]dto.ProductSummary, error)

	// Related สินค้า category เดียวกัน ไม่รวมตัวเอง
	Related(ctx context.Context, productID uint, limit int) ([]dto.ProductSummary, error)

	// GetImages ดึงรูปทั้งหมดของสินค้า เรียงตาม display_order
	GetImages(ctx context.Context, productID uint) ([]*models.ProductImage, error)

	// AddImage เพิ่มรูปให้สินค้า (admin)
	AddImage(ctx context.Context, productID uint, req *dto.CreateProductImageRequest) (*models.ProductImage, error)

	// DeleteImage ลบรูป (admin)
	DeleteImage(ctx context.Context, imageID uint) error

	// PriceRange ช่วงราคาของ active products - fallback 0..1000 เมื่อ catalog ว่าง
	PriceRange(ctx context.Context) (*dto.PriceRangeResponse, error)
}
