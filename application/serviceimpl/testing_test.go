package serviceimpl

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gearshop/domain/repositories"
	"gearshop/domain/services"
	"gearshop/infrastructure/postgres"
)

type testCatalog struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepository
	brandRepo    repositories.BrandRepository
	productRepo  repositories.ProductRepository
	imageRepo    repositories.ProductImageRepository

	categories services.CategoryService
	brands     services.BrandService
	products   services.ProductService
	seeder     services.SeedService
}

// newTestCatalog ต่อ service stack จริงบน sqlite in-memory โดยไม่มี cache
func newTestCatalog(t *testing.T) *testCatalog {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.Migrate(db))

	categoryRepo := postgres.NewCategoryRepository(db)
	brandRepo := postgres.NewBrandRepository(db)
	productRepo := postgres.NewProductRepository(db)
	imageRepo := postgres.NewProductImageRepository(db)

	return &testCatalog{
		db:           db,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		productRepo:  productRepo,
		imageRepo:    imageRepo,
		categories:   NewCategoryService(categoryRepo, nil),
		brands:       NewBrandService(brandRepo, nil),
		products:     NewProductService(productRepo, imageRepo, nil),
		seeder:       NewSeedService(categoryRepo, brandRepo, productRepo, imageRepo),
	}
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}
