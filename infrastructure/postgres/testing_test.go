package postgres

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gearshop/domain/models"
)

// newTestDB เปิด sqlite in-memory พร้อม migrate schema เดียวกับ production
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// in-memory database หายเมื่อ connection ปิด - ใช้ connection เดียวพอ
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

// makeProduct สร้าง product สำหรับ test พร้อมค่า default ที่ valid
func makeProduct(t *testing.T, db *gorm.DB, name, sku, slug, price string, mutate func(*models.Product)) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:          name,
		SKU:           sku,
		Slug:          slug,
		Price:         mustDecimal(t, price),
		Status:        models.ProductStatusActive,
		StockQuantity: 10,
		MinStockLevel: 5,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if mutate != nil {
		mutate(product)
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
