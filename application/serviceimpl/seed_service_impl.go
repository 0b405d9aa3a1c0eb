package serviceimpl

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"gearshop/domain/models"
	"gearshop/domain/repositories"
	"gearshop/domain/services"
	"gearshop/pkg/logger"
)

type SeedServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	brandRepo    repositories.BrandRepository
	productRepo  repositories.ProductRepository
	imageRepo    repositories.ProductImageRepository
}

func NewSeedService(
	categoryRepo repositories.CategoryRepository,
	brandRepo repositories.BrandRepository,
	productRepo repositories.ProductRepository,
	imageRepo repositories.ProductImageRepository,
) services.SeedService {
	return &SeedServiceImpl{
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		productRepo:  productRepo,
		imageRepo:    imageRepo,
	}
}

func (s *SeedServiceImpl) SeedSampleData(ctx context.Context) error {
	// idempotence: มีสินค้าแล้วถือว่า seed ไปแล้ว
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.InfoContext(ctx, "Sample data already present, skipping seed", "products", count)
		return nil
	}

	logger.InfoContext(ctx, "Seeding sample catalog data")

	categories, err := s.seedCategories(ctx)
	if err != nil {
		return err
	}
	brands, err := s.seedBrands(ctx)
	if err != nil {
		return err
	}
	products, err := s.seedProducts(ctx, categories, brands)
	if err != nil {
		return err
	}
	if err := s.seedImages(ctx, products); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Sample data seeded",
		"categories", len(categories), "brands", len(brands), "products", len(products))
	return nil
}

func (s *SeedServiceImpl) seedCategories(ctx context.Context) ([]*models.Category, error) {
	now := time.Now()
	categories := []*models.Category{
		{Name: "Graphics Cards", Slug: "graphics-cards", Description: "High-performance graphics cards for gaming", IsActive: true, CreatedAt: now},
		{Name: "Processors", Slug: "processors", Description: "CPUs for gaming and productivity", IsActive: true, CreatedAt: now},
		{Name: "Memory", Slug: "memory", Description: "RAM modules for optimal performance", IsActive: true, CreatedAt: now},
		{Name: "Storage", Slug: "storage", Description: "SSDs and HDDs for data storage", IsActive: true, CreatedAt: now},
		{Name: "Motherboards", Slug: "motherboards", Description: "Motherboards for system building", IsActive: true, CreatedAt: now},
		{Name: "Power Supplies", Slug: "power-supplies", Description: "PSUs for stable power delivery", IsActive: true, CreatedAt: now},
		{Name: "Cases", Slug: "cases", Description: "PC cases and enclosures", IsActive: true, CreatedAt: now},
		{Name: "Peripherals", Slug: "peripherals", Description: "Gaming keyboards, mice, and accessories", IsActive: true, CreatedAt: now},
	}
	for _, category := range categories {
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return nil, err
		}
	}
	return categories, nil
}

func (s *SeedServiceImpl) seedBrands(ctx context.Context) ([]*models.Brand, error) {
	now := time.Now()
	brands := []*models.Brand{
		{Name: "NVIDIA", Description: "Leading graphics technology company", IsActive: true, CreatedAt: now},
		{Name: "AMD", Description: "High-performance computing and graphics", IsActive: true, CreatedAt: now},
		{Name: "Intel", Description: "Semiconductor and processor manufacturer", IsActive: true, CreatedAt: now},
		{Name: "Corsair", Description: "Gaming peripherals and components", IsActive: true, CreatedAt: now},
		{Name: "ASUS", Description: "Computer hardware and electronics", IsActive: true, CreatedAt: now},
		{Name: "MSI", Description: "Gaming hardware manufacturer", IsActive: true, CreatedAt: now},
		{Name: "Kingston", Description: "Memory and storage solutions", IsActive: true, CreatedAt: now},
		{Name: "Seagate", Description: "Data storage technology", IsActive: true, CreatedAt: now},
	}
	for _, brand := range brands {
		if err := s.brandRepo.Create(ctx, brand); err != nil {
			return nil, err
		}
	}
	return brands, nil
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func pricePtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func (s *SeedServiceImpl) seedProducts(ctx context.Context, categories []*models.Category, brands []*models.Brand) ([]*models.Product, error) {
	now := time.Now()
	products := []*models.Product{
		{
			Name:          "NVIDIA GeForce RTX 4060 Gaming Graphics Card",
			Description:   "High-performance graphics card perfect for 1080p and 1440p gaming with ray tracing support.",
			SKU:           "RTX4060-8G",
			Price:         price("299.99"),
			OriginalPrice: pricePtr("349.99"),
			CategoryID:    &categories[0].ID,
			BrandID:       &brands[0].ID,
			Specifications: models.JSONMap{
				"Memory":       "8GB GDDR6",
				"Core Clock":   "1830 MHz",
				"Boost Clock":  "2460 MHz",
				"Memory Speed": "17 Gbps",
				"Interface":    "PCIe 4.0",
			},
			Features:      models.StringList{"Ray Tracing", "DLSS 3", "4K Gaming Ready", "VR Ready"},
			StockQuantity: 15,
			Slug:          "rtx-4060-gaming-graphics-card",
		},
		{
			Name:          "AMD Ryzen 5 5600X Processor",
			Description:   "6-core, 12-thread processor ideal for gaming and content creation.",
			SKU:           "R5-5600X",
			Price:         price("199.99"),
			OriginalPrice: pricePtr("229.99"),
			CategoryID:    &categories[1].ID,
			BrandID:       &brands[1].ID,
			Specifications: models.JSONMap{
				"Cores":       "6",
				"Threads":     "12",
				"Base Clock":  "3.7 GHz",
				"Boost Clock": "4.6 GHz",
				"Socket":      "AM4",
			},
			Features:      models.StringList{"Unlocked Multiplier", "PCIe 4.0 Support", "Wraith Stealth Cooler Included"},
			StockQuantity: 25,
			Slug:          "ryzen-5-5600x-processor",
		},
		{
			Name:          "Corsair Vengeance LPX 16GB DDR4 RAM",
			Description:   "High-performance DDR4 memory designed for overclocking.",
			SKU:           "DDR4-3200-16G",
			Price:         price("79.99"),
			OriginalPrice: pricePtr("99.99"),
			CategoryID:    &categories[2].ID,
			BrandID:       &brands[3].ID,
			Specifications: models.JSONMap{
				"Capacity": "16GB (2x8GB)",
				"Speed":    "DDR4-3200",
				"Latency":  "CL16",
				"Voltage":  "1.35V",
			},
			Features:      models.StringList{"XMP 2.0 Support", "Low Profile Design", "Lifetime Warranty"},
			StockQuantity: 40,
			Slug:          "corsair-vengeance-16gb-ddr4",
		},
		{
			Name:          "Kingston NV2 1TB NVMe SSD",
			Description:   "Fast NVMe SSD for quick boot times and game loading.",
			SKU:           "NVME-1TB-GAME",
			Price:         price("89.99"),
			OriginalPrice: pricePtr("119.99"),
			CategoryID:    &categories[3].ID,
			BrandID:       &brands[6].ID,
			Specifications: models.JSONMap{
				"Capacity":    "1TB",
				"Interface":   "PCIe 4.0 NVMe",
				"Read Speed":  "3500 MB/s",
				"Write Speed": "2100 MB/s",
			},
			Features:      models.StringList{"PCIe 4.0 Performance", "Compact M.2 Design", "Low Power Consumption"},
			StockQuantity: 30,
			Slug:          "kingston-nv2-1tb-nvme-ssd",
		},
		{
			Name:          "ASUS TUF Gaming B550-PLUS Motherboard",
			Description:   "Durable ATX motherboard with military-grade components.",
			SKU:           "B550-GAMING",
			Price:         price("129.99"),
			OriginalPrice: pricePtr("159.99"),
			CategoryID:    &categories[4].ID,
			BrandID:       &brands[4].ID,
			Specifications: models.JSONMap{
				"Socket":      "AM4",
				"Form Factor": "ATX",
				"Memory":      "4x DDR4 DIMM",
				"Expansion":   "PCIe 4.0 x16",
			},
			Features:      models.StringList{"Military-Grade Components", "AI Noise Cancelling", "Aura Sync RGB"},
			StockQuantity: 20,
			Slug:          "asus-tuf-b550-plus-motherboard",
		},
		{
			Name:          "Corsair RM650 650W Gold PSU",
			Description:   "Fully modular power supply with 80 Plus Gold efficiency.",
			SKU:           "PSU-650W-GOLD",
			Price:         price("99.99"),
			OriginalPrice: pricePtr("129.99"),
			CategoryID:    &categories[5].ID,
			BrandID:       &brands[3].ID,
			Specifications: models.JSONMap{
				"Wattage":    "650W",
				"Efficiency": "80 Plus Gold",
				"Modularity": "Fully Modular",
				"Fan Size":   "135mm",
			},
			Features:      models.StringList{"Zero RPM Fan Mode", "Fully Modular Cables", "10 Year Warranty"},
			StockQuantity: 18,
			Slug:          "corsair-rm650-gold-psu",
		},
		{
			Name:        "MSI MAG Forge 100M Mid Tower Case",
			Description: "Stylish mid-tower case with tempered glass side panel.",
			SKU:         "CASE-MIDTOWER",
			Price:       price("79.99"),
			CategoryID:  &categories[6].ID,
			BrandID:     &brands[5].ID,
			Specifications: models.JSONMap{
				"Form Factor":    "Mid Tower",
				"Side Panel":     "Tempered Glass",
				"Included Fans":  "2x 120mm",
				"Max GPU Length": "330mm",
			},
			Features:      models.StringList{"Tempered Glass Panel", "RGB Front Fans", "Cable Management"},
			StockQuantity: 12,
			Slug:          "msi-mag-forge-100m-case",
		},
		{
			Name:          "Corsair K55 RGB Gaming Keyboard",
			Description:   "Membrane gaming keyboard with dynamic RGB backlighting.",
			SKU:           "KB-MECH-RGB",
			Price:         price("89.99"),
			OriginalPrice: pricePtr("109.99"),
			CategoryID:    &categories[7].ID,
			BrandID:       &brands[3].ID,
			Specifications: models.JSONMap{
				"Switch Type": "Membrane",
				"Backlight":   "RGB",
				"Layout":      "Full Size",
				"Macro Keys":  "6",
			},
			Features:      models.StringList{"RGB Backlighting", "Dedicated Macro Keys", "Spill Resistant"},
			StockQuantity: 35,
			Slug:          "corsair-k55-rgb-keyboard",
		},
	}

	for _, product := range products {
		product.Status = models.ProductStatusActive
		product.MinStockLevel = 5
		product.CreatedAt = now
		product.UpdatedAt = now
		if err := s.productRepo.Create(ctx, product); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (s *SeedServiceImpl) seedImages(ctx context.Context, products []*models.Product) error {
	imageURLs := []string{
		"https://images.unsplash.com/photo-1591488320449-011701bb6704?w=800",
		"https://images.unsplash.com/photo-1555617981-dac3880eac6e?w=800",
		"https://images.unsplash.com/photo-1541029071515-84cc54f84dc5?w=800",
		"https://images.unsplash.com/photo-1597872200969-2b65d56bd16b?w=800",
		"https://images.unsplash.com/photo-1518770660439-4636190af475?w=800",
		"https://images.unsplash.com/photo-1587202372775-e229f172b9d7?w=800",
		"https://images.unsplash.com/photo-1587202372616-b43abea06c2a?w=800",
		"https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=800",
	}
	now := time.Now()
	for i, product := range products {
		image := &models.ProductImage{
			ProductID: product.ID,
			ImageURL:  imageURLs[i%len(imageURLs)],
			AltText:   product.Name,
			IsPrimary: true,
			CreatedAt: now,
		}
		if err := s.imageRepo.Create(ctx, image); err != nil {
			return err
		}
	}
	return nil
}
