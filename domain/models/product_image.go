package models

import "time"

type ProductImage struct {
	ID           uint   `gorm:"primaryKey"`
	ProductID    uint   `gorm:"index;not null"`
	ImageURL     string `gorm:"size:500;not null"`
	AltText      string `gorm:"size:200"`
	IsPrimary    bool   `gorm:"default:false"`
	DisplayOrder int    `gorm:"default:0"`
	CreatedAt    time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
