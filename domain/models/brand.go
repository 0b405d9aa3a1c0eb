package models

import "time"

type Brand struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;uniqueIndex;not null"`
	Description string  `gorm:"size:500"`
	LogoURL     *string `gorm:"size:500"`
	WebsiteURL  *string `gorm:"size:500"`
	IsActive    bool    `gorm:"default:true"`
	CreatedAt   time.Time
}

func (Brand) TableName() string {
	return "brands"
}
