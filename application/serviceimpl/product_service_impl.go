package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gearshop/domain/dto"
	"gearshop/domain/models"
	"gearshop/domain/repositories"
	"gearshop/domain/services"
	redispkg "gearshop/infrastructure/redis"
	"gearshop/pkg/logger"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrImageNotFound   = errors.New("product image not found")
	ErrDuplicateSKU    = errors.New("product sku already exists")
	ErrDuplicateSlug   = errors.New("product slug already exists")
)

const (
	priceRangeCacheKey = "catalog:price_range"
	priceRangeCacheTTL = 5 * time.Minute

	defaultListLimit    = 20
	defaultFeaturedSize = 8
)

// featuredPriceCeiling เพดานราคาสินค้าแนะนำ
var featuredPriceCeiling = decimal.RequireFromString("200.00")

// fallback price range เมื่อ catalog ว่าง
var (
	fallbackPriceMin = decimal.NewFromInt(0)
	fallbackPriceMax = decimal.NewFromInt(1000)
)

type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
	imageRepo   repositories.ProductImageRepository
	cache       *redispkg.Client
}

func NewProductService(
	productRepo repositories.ProductRepository,
	imageRepo repositories.ProductImageRepository,
	cache *redispkg.Client,
) services.ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		imageRepo:   imageRepo,
		cache:       cache,
	}
}

func (s *ProductServiceImpl) Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("price must be positive")
	}

	// SKU กับ slug ต้องไม่ซ้ำ
	existing, err := s.productRepo.GetBySKU(ctx, req.SKU)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Product SKU already exists", "sku", req.SKU)
		return nil, ErrDuplicateSKU
	}
	newSlug := slug.Make(req.Slug)
	existing, err = s.productRepo.GetBySlug(ctx, newSlug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Product slug already exists", "slug", newSlug)
		return nil, ErrDuplicateSlug
	}

	now := time.Now()
	product := &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		SKU:            req.SKU,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		Status:         models.ProductStatusActive,
		CategoryID:     req.CategoryID,
		BrandID:        req.BrandID,
		Specifications: req.Specifications,
		Features:       req.Features,
		StockQuantity:  req.StockQuantity,
		MinStockLevel:  req.MinStockLevel,
		Slug:           newSlug,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if product.Specifications == nil {
		product.Specifications = models.JSONMap{}
	}
	if product.Features == nil {
		product.Features = models.StringList{}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to create product", "sku", req.SKU, "error", err)
		return nil, err
	}

	s.invalidateAggregates(ctx)
	logger.InfoContext(ctx, "Product created", "product_id", product.ID, "sku", product.SKU)
	return product, nil
}

func (s *ProductServiceImpl) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Product not found", "product_id", id)
			return nil, ErrProductNotFound
		}
		logger.ErrorContext(ctx, "Failed to load product", "product_id", id, "error", err)
		return nil, err
	}
	return product, nil
}

func (s *ProductServiceImpl) GetBySlug(ctx context.Context, slugStr string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Product not found", "slug", slugStr)
			return nil, ErrProductNotFound
		}
		logger.ErrorContext(ctx, "Failed to load product", "slug", slugStr, "error", err)
		return nil, err
	}
	return product, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Product lookup failed for update", "product_id", id, "error", err)
		return nil, asNotFound(err, ErrProductNotFound)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.LessThanOrEqual(decimal.Zero) {
			return nil, errors.New("price must be positive")
		}
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.BrandID != nil {
		product.BrandID = req.BrandID
	}
	if req.Specifications != nil {
		product.Specifications = req.Specifications
	}
	if req.Features != nil {
		product.Features = req.Features
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.MinStockLevel != nil {
		product.MinStockLevel = *req.MinStockLevel
	}
	if req.Slug != nil {
		newSlug := slug.Make(*req.Slug)
		existing, err := s.productRepo.GetBySlug(ctx, newSlug)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateSlug
		}
		product.Slug = newSlug
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to update product", "product_id", id, "error", err)
		return nil, err
	}

	s.invalidateAggregates(ctx)
	logger.InfoContext(ctx, "Product updated", "product_id", id)
	return product, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id uint) error {
	_, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Product lookup failed for deletion", "product_id", id, "error", err)
		return asNotFound(err, ErrProductNotFound)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete product", "product_id", id, "error", err)
		return err
	}

	s.invalidateAggregates(ctx)
	logger.InfoContext(ctx, "Product deleted", "product_id", id)
	return nil
}

func (s *ProductServiceImpl) List(ctx context.Context, filter *dto.ProductFilter, limit, offset int) ([]dto.ProductSummary, int64, error) {
	if limit < 1 {
		limit = defaultListLimit
	}

	products, total, err := s.productRepo.ListWithFilters(ctx, filter, limit, offset)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list products", "error", err)
		return nil, 0, err
	}

	summaries, err := s.toSummaries(ctx, products)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

func (s *ProductServiceImpl) Search(ctx context.Context, query string, limit int) ([]dto.ProductSummary, error) {
	filter := &dto.ProductFilter{
		Status:      models.ProductStatusActive,
		SearchQuery: query,
	}
	summaries, _, err := s.List(ctx, filter, limit, 0)
	return summaries, err
}

func (s *ProductServiceImpl) Featured(ctx context.Context, limit int) ([]dto.ProductSummary, error) {
	if limit < 1 {
		limit = defaultFeaturedSize
	}
	ceiling := featuredPriceCeiling
	filter := &dto.ProductFilter{
		Status:      models.ProductStatusActive,
		InStockOnly: true,
		MaxPrice:    &ceiling,
	}
	summaries, _, err := s.List(ctx, filter, limit, 0)
	return summaries, err
}

func (s *ProductServiceImpl) Related(ctx context.Context, productID uint, limit int) ([]dto.ProductSummary, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, asNotFound(err, ErrProductNotFound)
	}

	if product.CategoryID == nil {
		return []dto.ProductSummary{}, nil
	}
	if limit < 1 {
		limit = 4
	}

	filter := &dto.ProductFilter{
		CategoryID: product.CategoryID,
		Status:     models.ProductStatusActive,
	}
	// ดึงเผื่อ 1 ตัว เพราะตัวเองอาจติดมาด้วย
	summaries, _, err := s.List(ctx, filter, limit+1, 0)
	if err != nil {
		return nil, err
	}

	related := make([]dto.ProductSummary, 0, limit)
	for _, summary := range summaries {
		if summary.ID == productID {
			continue
		}
		related = append(related, summary)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

func (s *ProductServiceImpl) GetImages(ctx context.Context, productID uint) ([]*models.ProductImage, error) {
	images, err := s.imageRepo.ListByProduct(ctx, productID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list product images", "product_id", productID, "error", err)
		return nil, err
	}
	return images, nil
}

func (s *ProductServiceImpl) AddImage(ctx context.Context, productID uint, req *dto.CreateProductImageRequest) (*models.ProductImage, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, asNotFound(err, ErrProductNotFound)
	}

	image := &models.ProductImage{
		ProductID:    productID,
		ImageURL:     req.ImageURL,
		AltText:      req.AltText,
		IsPrimary:    req.IsPrimary,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now(),
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		logger.ErrorContext(ctx, "Failed to add product image", "product_id", productID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Product image added", "product_id", productID, "image_id", image.ID)
	return image, nil
}

func (s *ProductServiceImpl) DeleteImage(ctx context.Context, imageID uint) error {
	if _, err := s.imageRepo.GetByID(ctx, imageID); err != nil {
		return asNotFound(err, ErrImageNotFound)
	}

	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete product image", "image_id", imageID, "error", err)
		return err
	}
	return nil
}

func (s *ProductServiceImpl) PriceRange(ctx context.Context) (*dto.PriceRangeResponse, error) {
	// cache-aside: Redis ล่มก็ query ตรงแทน
	if s.cache != nil {
		var cached dto.PriceRangeResponse
		if err := s.cache.GetJSON(ctx, priceRangeCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	min, max, found, err := s.productRepo.GetPriceRange(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get price range", "error", err)
		return nil, err
	}

	resp := &dto.PriceRangeResponse{Min: min, Max: max}
	if !found {
		resp.Min = fallbackPriceMin
		resp.Max = fallbackPriceMax
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, priceRangeCacheKey, resp, priceRangeCacheTTL)
	}
	return resp, nil
}

// toSummaries build summaries พร้อม primary image จาก batched lookup (query เดียวต่อ page)
func (s *ProductServiceImpl) toSummaries(ctx context.Context, products []*models.Product) ([]dto.ProductSummary, error) {
	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	urls, err := s.imageRepo.GetPrimaryURLs(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load primary images", "error", err)
		return nil, err
	}

	summaries := make([]dto.ProductSummary, len(products))
	for i, p := range products {
		var imageURL *string
		if url, ok := urls[p.ID]; ok {
			u := url
			imageURL = &u
		}
		summaries[i] = dto.ProductToSummary(p, imageURL)
	}
	return summaries, nil
}

// invalidateAggregates ล้าง cache ที่ขึ้นกับตาราง products
func (s *ProductServiceImpl) invalidateAggregates(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, priceRangeCacheKey, categoryCountsCacheKey, brandCountsCacheKey)
	}
}
