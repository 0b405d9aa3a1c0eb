package serviceimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSampleData(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.seeder.SeedSampleData(ctx))

	categoryCount, err := catalog.categoryRepo.Count(ctx)
	require.NoError(t, err)
	brandCount, err := catalog.brandRepo.Count(ctx)
	require.NoError(t, err)
	productCount, err := catalog.productRepo.Count(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 8, categoryCount)
	assert.EqualValues(t, 8, brandCount)
	assert.EqualValues(t, 8, productCount)

	t.Run("every product has a primary image", func(t *testing.T) {
		products, _, err := catalog.productRepo.ListWithFilters(ctx, nil, 50, 0)
		require.NoError(t, err)
		require.Len(t, products, 8)

		ids := make([]uint, len(products))
		for i, p := range products {
			ids[i] = p.ID
		}
		urls, err := catalog.imageRepo.GetPrimaryURLs(ctx, ids)
		require.NoError(t, err)
		for _, p := range products {
			assert.NotEmpty(t, urls[p.ID], "product %s has no primary image", p.SKU)
		}
	})

	t.Run("known products are wired to the right category and brand", func(t *testing.T) {
		gpu, err := catalog.productRepo.GetBySKU(ctx, "RTX4060-8G")
		require.NoError(t, err)
		assert.True(t, gpu.Price.Equal(mustDecimal(t, "299.99")))
		require.NotNil(t, gpu.OriginalPrice)
		assert.True(t, gpu.OriginalPrice.Equal(mustDecimal(t, "349.99")))

		full, err := catalog.productRepo.GetBySlug(ctx, "rtx-4060-gaming-graphics-card")
		require.NoError(t, err)
		require.NotNil(t, full.Category)
		require.NotNil(t, full.Brand)
		assert.Equal(t, "Graphics Cards", full.Category.Name)
		assert.Equal(t, "NVIDIA", full.Brand.Name)
		assert.Equal(t, "8GB GDDR6", full.Specifications["Memory"])
		assert.Contains(t, []string(full.Features), "Ray Tracing")
	})

	t.Run("running the seeder again does not duplicate", func(t *testing.T) {
		require.NoError(t, catalog.seeder.SeedSampleData(ctx))

		productCount, err := catalog.productRepo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 8, productCount)

		categoryCount, err := catalog.categoryRepo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 8, categoryCount)
	})
}

func TestSeededFeaturedSelection(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, catalog.seeder.SeedSampleData(ctx))

	featured, err := catalog.products.Featured(ctx, 10)
	require.NoError(t, err)

	// สินค้าตัวอย่างมีตัวเดียวที่แพงเกินเพดาน (การ์ดจอ 299.99)
	require.Len(t, featured, 7)
	ceiling := mustDecimal(t, "200.00")
	for _, summary := range featured {
		assert.True(t, summary.Price.LessThanOrEqual(ceiling), "%s priced %s", summary.Name, summary.Price)
		assert.Greater(t, summary.StockQuantity, 0)
		assert.NotNil(t, summary.PrimaryImageURL)
	}
}

func TestSeededPriceRange(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, catalog.seeder.SeedSampleData(ctx))

	priceRange, err := catalog.products.PriceRange(ctx)
	require.NoError(t, err)
	assert.True(t, priceRange.Min.Equal(mustDecimal(t, "79.99")), "min = %s", priceRange.Min)
	assert.True(t, priceRange.Max.Equal(mustDecimal(t, "299.99")), "max = %s", priceRange.Max)
}

func TestSeededCategoryCounts(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, catalog.seeder.SeedSampleData(ctx))

	counts, err := catalog.categories.GetProductCounts(ctx)
	require.NoError(t, err)

	// seed ใส่สินค้า 1 ตัวต่อ category ทั้ง 8
	assert.Len(t, counts, 8)
	for id, count := range counts {
		assert.EqualValues(t, 1, count, "category %d", id)
	}

	brandCounts, err := catalog.brands.GetProductCounts(ctx)
	require.NoError(t, err)
	// Corsair มี 3 ตัว (RAM, PSU, คีย์บอร์ด) - brand อื่นที่ขายของมีอย่างละ 1
	var max int64
	var total int64
	for _, count := range brandCounts {
		total += count
		if count > max {
			max = count
		}
	}
	assert.EqualValues(t, 8, total)
	assert.EqualValues(t, 3, max)
}
