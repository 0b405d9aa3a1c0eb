package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gearshop/application/serviceimpl"
	"gearshop/domain/repositories"
	"gearshop/domain/services"
	"gearshop/infrastructure/postgres"
	redispkg "gearshop/infrastructure/redis"
	"gearshop/interfaces/api/handlers"
	"gearshop/pkg/config"
	"gearshop/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redispkg.Client // Redis client สำหรับ cache (optional)

	// Repositories
	CategoryRepository     repositories.CategoryRepository
	BrandRepository        repositories.BrandRepository
	ProductRepository      repositories.ProductRepository
	ProductImageRepository repositories.ProductImageRepository

	// Services
	CategoryService services.CategoryService
	BrandService    services.BrandService
	ProductService  services.ProductService
	SeedService     services.SeedService
	AuthService     services.AuthService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.seedSampleData(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.BrandRepository = postgres.NewBrandRepository(c.DB)
	c.ProductRepository = postgres.NewProductRepository(c.DB)
	c.ProductImageRepository = postgres.NewProductImageRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, c.RedisClient)
	c.BrandService = serviceimpl.NewBrandService(c.BrandRepository, c.RedisClient)
	c.ProductService = serviceimpl.NewProductService(c.ProductRepository, c.ProductImageRepository, c.RedisClient)
	c.SeedService = serviceimpl.NewSeedService(c.CategoryRepository, c.BrandRepository, c.ProductRepository, c.ProductImageRepository)
	c.AuthService = serviceimpl.NewAuthService(c.Config.Admin, c.Config.JWT)
	logger.Info("Services initialized")
}

// seedSampleData ใส่ sample catalog ตอน start - idempotent
func (c *Container) seedSampleData() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return c.SeedService.SeedSampleData(ctx)
}

func (c *Container) Cleanup() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil {
			return err
		}
	}

	logger.Info("Container cleaned up")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		ProductService:  c.ProductService,
		CategoryService: c.CategoryService,
		BrandService:    c.BrandService,
		AuthService:     c.AuthService,
	}
}
