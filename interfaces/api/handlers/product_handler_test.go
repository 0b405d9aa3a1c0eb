package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gearshop/application/serviceimpl"
	"gearshop/infrastructure/postgres"
	"gearshop/interfaces/api/handlers"
	"gearshop/interfaces/api/routes"
	"gearshop/pkg/config"
	"gearshop/pkg/utils"
)

const testJWTSecret = "handler-test-secret"

// newTestApp ต่อ API stack จริงบน sqlite in-memory
func newTestApp(t *testing.T) (*fiber.App, string) {
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

	h := handlers.NewHandlers(&handlers.Services{
		ProductService:  serviceimpl.NewProductService(productRepo, imageRepo, nil),
		CategoryService: serviceimpl.NewCategoryService(categoryRepo, nil),
		BrandService:    serviceimpl.NewBrandService(brandRepo, nil),
		AuthService:     serviceimpl.NewAuthService(config.AdminConfig{}, config.JWTConfig{Secret: testJWTSecret}),
	})

	app := fiber.New()
	routes.SetupRoutes(app, h, testJWTSecret)

	token, err := utils.GenerateToken("admin", "admin", testJWTSecret, time.Hour)
	require.NoError(t, err)

	return app, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestListProductsFilterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		name   string
		query  string
		status int
	}{
		{"no filters", "", fiber.StatusOK},
		{"price window", "?min_price=10&max_price=500", fiber.StatusOK},
		{"zero min_price", "?min_price=0", fiber.StatusOK},
		{"negative min_price", "?min_price=-50.00", fiber.StatusBadRequest},
		{"negative max_price", "?max_price=-1", fiber.StatusBadRequest},
		{"malformed min_price", "?min_price=cheap", fiber.StatusBadRequest},
		{"malformed category_id", "?category_id=gpu", fiber.StatusBadRequest},
		{"unknown status", "?status=archived", fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodGet, "/api/v1/products"+tc.query, "", nil)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestCreateProductConflicts(t *testing.T) {
	app, token := newTestApp(t)

	body := fiber.Map{
		"name":  "Test GPU",
		"sku":   "GPU-1",
		"price": "149.99",
		"slug":  "test-gpu",
	}

	t.Run("missing token is rejected", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/api/v1/products", "", body)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/products", token, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	t.Run("duplicate sku answers conflict", func(t *testing.T) {
		dup := fiber.Map{"name": "Test GPU 2", "sku": "GPU-1", "price": "99.99", "slug": "test-gpu-2"}
		resp := doJSON(t, app, fiber.MethodPost, "/api/v1/products", token, dup)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("duplicate slug answers conflict", func(t *testing.T) {
		dup := fiber.Map{"name": "Test GPU 3", "sku": "GPU-3", "price": "99.99", "slug": "test-gpu"}
		resp := doJSON(t, app, fiber.MethodPost, "/api/v1/products", token, dup)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestCreateBrandConflict(t *testing.T) {
	app, token := newTestApp(t)

	body := fiber.Map{"name": "Corsair"}

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/brands", token, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/v1/brands", token, body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
