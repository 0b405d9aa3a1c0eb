package services

import "context"

type SeedService interface {
	// SeedSampleData ใส่ sample data ครั้งเดียว - no-op ถ้ามีสินค้าอยู่แล้ว
	// insert เป็น 4 stage: categories, brands, products, images ตามลำดับ
	// เพื่อให้ stage หลังอ้าง id ที่ generate จาก stage ก่อนได้
	SeedSampleData(ctx context.Context) error
}
