package serviceimpl

import (
	"errors"

	"gorm.io/gorm"
)

// asNotFound แปลง gorm.ErrRecordNotFound เป็น sentinel ของ domain
// error อื่น (connection ขาด, query พัง) ส่งกลับตามเดิมให้ handler ตอบ 500
func asNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
