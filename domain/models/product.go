package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus สถานะความพร้อมขายของสินค้า
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusOutOfStock   ProductStatus = "out_of_stock"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// JSONMap เก็บ specifications ของสินค้า (key to scalar value)
// Example: {"Memory": "8GB GDDR6", "CUDA Cores": "3072"}
type JSONMap map[string]any

// Scan implements sql.Scanner for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, sok := value.(string); sok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}

	return json.Unmarshal(bytes, m)
}

// Value implements driver.Valuer for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return json.Marshal(m)
}

// StringList เก็บ feature list แบบเรียงลำดับ
type StringList []string

// Scan implements sql.Scanner for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, sok := value.(string); sok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}

	return json.Unmarshal(bytes, l)
}

// Value implements driver.Valuer for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

type Product struct {
	ID            uint             `gorm:"primaryKey"`
	Name          string           `gorm:"size:200;not null"`
	Description   string           `gorm:"size:2000"`
	SKU           string           `gorm:"size:50;uniqueIndex;not null;column:sku"`
	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status        ProductStatus    `gorm:"size:20;default:'active'"`

	CategoryID *uint `gorm:"index"`
	BrandID    *uint `gorm:"index"`

	Specifications JSONMap    `gorm:"type:jsonb;default:'{}'"`
	Features       StringList `gorm:"type:jsonb;default:'[]'"`

	StockQuantity int `gorm:"default:0"`
	MinStockLevel int `gorm:"default:5"`

	// SEO
	Slug            string  `gorm:"size:200;uniqueIndex;not null"`
	MetaTitle       *string `gorm:"size:200"`
	MetaDescription *string `gorm:"size:500"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Category *Category       `gorm:"foreignKey:CategoryID"`
	Brand    *Brand          `gorm:"foreignKey:BrandID"`
	Images   []*ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "products"
}

// IsInStock ตรวจสอบว่ามีของพร้อมส่งหรือไม่
func (p *Product) IsInStock() bool {
	return p.StockQuantity > 0
}

// IsLowStock ตรวจสอบว่า stock ต่ำกว่า min_stock_level
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

// HasDiscount ตรวจสอบว่ามีส่วนลดหรือไม่ (เช็คตอน display เท่านั้น ไม่ enforce ที่ schema)
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}

// DiscountPercent คำนวณ % ส่วนลดจาก original_price
func (p *Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	diff := p.OriginalPrice.Sub(p.Price)
	pct := diff.Div(*p.OriginalPrice).Mul(decimal.NewFromInt(100))
	return int(pct.IntPart())
}
