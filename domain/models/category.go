package models

import "time"

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Slug        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"size:500"`
	ParentID    *uint  `gorm:"index"`
	IsActive    bool   `gorm:"default:true"`
	CreatedAt   time.Time

	// Relations - tree ผูกผ่าน parent_id เท่านั้น
	Parent   *Category  `gorm:"foreignKey:ParentID"`
	Children []Category `gorm:"foreignKey:ParentID"`
}

func (Category) TableName() string {
	return "categories"
}

// IsRoot ตรวจสอบว่าเป็น top-level category หรือไม่
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
