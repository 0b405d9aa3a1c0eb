package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearshop/domain/dto"
	"gearshop/domain/models"
)

func TestListWithFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	gpu := &models.Category{Name: "Graphics Cards", Slug: "graphics-cards", IsActive: true, CreatedAt: time.Now()}
	cpu := &models.Category{Name: "Processors", Slug: "processors", IsActive: true, CreatedAt: time.Now()}
	require.NoError(t, db.Create(gpu).Error)
	require.NoError(t, db.Create(cpu).Error)

	nvidia := &models.Brand{Name: "NVIDIA", IsActive: true, CreatedAt: time.Now()}
	amd := &models.Brand{Name: "AMD", IsActive: true, CreatedAt: time.Now()}
	require.NoError(t, db.Create(nvidia).Error)
	require.NoError(t, db.Create(amd).Error)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	makeProduct(t, db, "RTX 4060 Gaming Card", "GPU-1", "rtx-4060", "299.99", func(p *models.Product) {
		p.CategoryID = &gpu.ID
		p.BrandID = &nvidia.ID
		p.CreatedAt = base
	})
	makeProduct(t, db, "Ryzen 5 5600X", "CPU-1", "ryzen-5600x", "199.99", func(p *models.Product) {
		p.CategoryID = &cpu.ID
		p.BrandID = &amd.ID
		p.CreatedAt = base.Add(time.Hour)
	})
	makeProduct(t, db, "Budget CPU Cooler", "COOL-1", "budget-cooler", "29.99", func(p *models.Product) {
		p.CategoryID = &cpu.ID
		p.BrandID = &amd.ID
		p.StockQuantity = 0
		p.Status = models.ProductStatusOutOfStock
		p.CreatedAt = base.Add(2 * time.Hour)
	})
	makeProduct(t, db, "Legacy GPU", "GPU-OLD", "legacy-gpu", "99.99", func(p *models.Product) {
		p.CategoryID = &gpu.ID
		p.BrandID = &nvidia.ID
		p.Status = models.ProductStatusDiscontinued
		p.CreatedAt = base.Add(3 * time.Hour)
	})

	t.Run("no filter returns everything newest first", func(t *testing.T) {
		products, total, err := repo.ListWithFilters(ctx, nil, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		require.Len(t, products, 4)
		assert.Equal(t, "Legacy GPU", products[0].Name)
		assert.Equal(t, "RTX 4060 Gaming Card", products[3].Name)
	})

	t.Run("filter by category", func(t *testing.T) {
		filter := &dto.ProductFilter{CategoryID: &cpu.ID}
		products, total, err := repo.ListWithFilters(ctx, filter, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, p := range products {
			require.NotNil(t, p.CategoryID)
			assert.Equal(t, cpu.ID, *p.CategoryID)
		}
	})

	t.Run("filter by brand", func(t *testing.T) {
		filter := &dto.ProductFilter{BrandID: &nvidia.ID}
		_, total, err := repo.ListWithFilters(ctx, filter, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		min := mustDecimal(t, "99.99")
		max := mustDecimal(t, "199.99")
		filter := &dto.ProductFilter{MinPrice: &min, MaxPrice: &max}
		products, total, err := repo.ListWithFilters(ctx, filter, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, p := range products {
			assert.True(t, p.Price.GreaterThanOrEqual(min))
			assert.True(t, p.Price.LessThanOrEqual(max))
		}
	})

	t.Run("filter by status", func(t *testing.T) {
		filter := &dto.ProductFilter{Status: models.ProductStatusActive}
		_, total, err := repo.ListWithFilters(ctx, filter, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("in stock only excludes zero stock", func(t *testing.T) {
		filter := &dto.ProductFilter{InStockOnly: true}
		products, _, err := repo.ListWithFilters(ctx, filter, 10, 0)
		require.NoError(t, err)
		for _, p := range products {
			assert.Greater(t, p.StockQuantity, 0)
		}
		assert.Len(t, products, 3)
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		filter := &dto.ProductFilter{SearchQuery: "rYzEn"}
		products, total, err := repo.ListWithFilters(ctx, filter, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, products, 1)
		assert.Equal(t, "Ryzen 5 5600X", products[0].Name)
	})

	t.Run("search with no match returns empty not error", func(t *testing.T) {
		filter := &dto.ProductFilter{SearchQuery: "mainframe"}
		products, total, err := repo.ListWithFilters(ctx, filter, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
		assert.Empty(t, products)
	})

	t.Run("filters combine conjunctively", func(t *testing.T) {
		max := mustDecimal(t, "150.00")
		filter := &dto.ProductFilter{
			CategoryID: &gpu.ID,
			MaxPrice:   &max,
			Status:     models.ProductStatusDiscontinued,
		}
		products, total, err := repo.ListWithFilters(ctx, filter, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, products, 1)
		assert.Equal(t, "Legacy GPU", products[0].Name)
	})

	t.Run("pagination windows are disjoint and total is pre-pagination", func(t *testing.T) {
		first, total, err := repo.ListWithFilters(ctx, nil, 2, 0)
		require.NoError(t, err)
		second, total2, err := repo.ListWithFilters(ctx, nil, 2, 2)
		require.NoError(t, err)

		assert.EqualValues(t, 4, total)
		assert.EqualValues(t, 4, total2)
		require.Len(t, first, 2)
		require.Len(t, second, 2)

		seen := map[uint]bool{}
		for _, p := range append(first, second...) {
			assert.False(t, seen[p.ID], "product %d appeared in both pages", p.ID)
			seen[p.ID] = true
		}
	})

	t.Run("relations are preloaded", func(t *testing.T) {
		filter := &dto.ProductFilter{SearchQuery: "RTX"}
		products, _, err := repo.ListWithFilters(ctx, filter, 10, 0)
		require.NoError(t, err)
		require.Len(t, products, 1)
		require.NotNil(t, products[0].Category)
		require.NotNil(t, products[0].Brand)
		assert.Equal(t, "Graphics Cards", products[0].Category.Name)
		assert.Equal(t, "NVIDIA", products[0].Brand.Name)
	})
}

func TestListWithFiltersTieBreak(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	// created_at เท่ากันหมด - ลำดับต้อง deterministic ด้วย id DESC
	createdAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	for _, sku := range []string{"TIE-1", "TIE-2", "TIE-3"} {
		makeProduct(t, db, "Product "+sku, sku, "tie-"+sku, "50.00", func(p *models.Product) {
			p.CreatedAt = createdAt
		})
	}

	products, _, err := repo.ListWithFilters(ctx, nil, 10, 0)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "TIE-3", products[0].SKU)
	assert.Equal(t, "TIE-2", products[1].SKU)
	assert.Equal(t, "TIE-1", products[2].SKU)
}

func TestGetPriceRange(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	t.Run("empty catalog reports not found", func(t *testing.T) {
		_, _, found, err := repo.GetPriceRange(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("range covers active products only", func(t *testing.T) {
		makeProduct(t, db, "Cheap", "PR-1", "pr-cheap", "19.99", nil)
		makeProduct(t, db, "Pricey", "PR-2", "pr-pricey", "899.99", nil)
		makeProduct(t, db, "Retired", "PR-3", "pr-retired", "9999.99", func(p *models.Product) {
			p.Status = models.ProductStatusDiscontinued
		})

		min, max, found, err := repo.GetPriceRange(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, min.Equal(mustDecimal(t, "19.99")), "min = %s", min)
		assert.True(t, max.Equal(mustDecimal(t, "899.99")), "max = %s", max)
	})
}

func TestProductDeleteRemovesImages(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)
	imageRepo := NewProductImageRepository(db)

	product := makeProduct(t, db, "With Images", "DEL-1", "del-with-images", "49.99", nil)
	require.NoError(t, imageRepo.Create(ctx, &models.ProductImage{
		ProductID: product.ID,
		ImageURL:  "https://example.com/a.jpg",
		IsPrimary: true,
	}))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.GetByID(ctx, product.ID)
	assert.Error(t, err)

	images, err := imageRepo.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestGetPrimaryURLs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	imageRepo := NewProductImageRepository(db)

	withPrimary := makeProduct(t, db, "Primary", "IMG-1", "img-primary", "10.00", nil)
	noPrimary := makeProduct(t, db, "No Primary", "IMG-2", "img-no-primary", "10.00", nil)
	noImages := makeProduct(t, db, "Bare", "IMG-3", "img-bare", "10.00", nil)

	// primary อยู่ display_order ท้ายๆ - ต้องชนะรูปที่ order ต่ำกว่า
	require.NoError(t, imageRepo.Create(ctx, &models.ProductImage{
		ProductID: withPrimary.ID, ImageURL: "https://example.com/side.jpg", DisplayOrder: 0,
	}))
	require.NoError(t, imageRepo.Create(ctx, &models.ProductImage{
		ProductID: withPrimary.ID, ImageURL: "https://example.com/front.jpg", IsPrimary: true, DisplayOrder: 5,
	}))

	// ไม่มี primary - fallback เป็น display_order ต่ำสุด
	require.NoError(t, imageRepo.Create(ctx, &models.ProductImage{
		ProductID: noPrimary.ID, ImageURL: "https://example.com/second.jpg", DisplayOrder: 2,
	}))
	require.NoError(t, imageRepo.Create(ctx, &models.ProductImage{
		ProductID: noPrimary.ID, ImageURL: "https://example.com/first.jpg", DisplayOrder: 1,
	}))

	urls, err := imageRepo.GetPrimaryURLs(ctx, []uint{withPrimary.ID, noPrimary.ID, noImages.ID})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/front.jpg", urls[withPrimary.ID])
	assert.Equal(t, "https://example.com/first.jpg", urls[noPrimary.ID])
	_, ok := urls[noImages.ID]
	assert.False(t, ok, "product without images must be absent from the map")

	t.Run("empty id list short-circuits", func(t *testing.T) {
		urls, err := imageRepo.GetPrimaryURLs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})
}

func TestGetProductCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	categoryRepo := NewCategoryRepository(db)
	brandRepo := NewBrandRepository(db)

	gpu := &models.Category{Name: "Graphics Cards", Slug: "graphics-cards", IsActive: true, CreatedAt: time.Now()}
	empty := &models.Category{Name: "Peripherals", Slug: "peripherals", IsActive: true, CreatedAt: time.Now()}
	require.NoError(t, db.Create(gpu).Error)
	require.NoError(t, db.Create(empty).Error)

	nvidia := &models.Brand{Name: "NVIDIA", IsActive: true, CreatedAt: time.Now()}
	require.NoError(t, db.Create(nvidia).Error)

	makeProduct(t, db, "Card A", "CNT-1", "cnt-a", "100.00", func(p *models.Product) {
		p.CategoryID = &gpu.ID
		p.BrandID = &nvidia.ID
	})
	makeProduct(t, db, "Card B", "CNT-2", "cnt-b", "150.00", func(p *models.Product) {
		p.CategoryID = &gpu.ID
		p.BrandID = &nvidia.ID
	})
	// discontinued ไม่นับ
	makeProduct(t, db, "Card C", "CNT-3", "cnt-c", "80.00", func(p *models.Product) {
		p.CategoryID = &gpu.ID
		p.BrandID = &nvidia.ID
		p.Status = models.ProductStatusDiscontinued
	})
	// ไม่มี category/brand - ไม่พังและไม่นับเข้า group ไหน
	makeProduct(t, db, "Loose", "CNT-4", "cnt-loose", "60.00", nil)

	categoryCounts, err := categoryRepo.GetProductCounts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, categoryCounts[gpu.ID])
	_, ok := categoryCounts[empty.ID]
	assert.False(t, ok, "category without products must be absent")

	brandCounts, err := brandRepo.GetProductCounts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, brandCounts[nvidia.ID])
}
