package repository

import (
	"github.com/sundap1986/Vehicle-Repair-Order-System/entity"
	"gorm.io/gorm"
)

type SparePartRepository struct {
	DB *gorm.DB
}

func NewSparePartRepository(db *gorm.DB) *SparePartRepository {
	return &SparePartRepository{DB: db}
}

func (r *SparePartRepository) Create(p *entity.SparePart) error {
	return r.DB.Create(p).Error
}

func (r *SparePartRepository) ListForOrder(orderID uint) ([]entity.SparePart, error) {
	var out []entity.SparePart
	err := r.DB.Where("order_id = ?", orderID).Find(&out).Error
	return out, err
}

// Delete removes one part, but only when it really belongs to the given
// order; the order id from the URL is not trusted on its own.
func (r *SparePartRepository) Delete(partID, orderID uint) (int64, error) {
	res := r.DB.Where("id = ? AND order_id = ?", partID, orderID).
		Delete(&entity.SparePart{})
	return res.RowsAffected, res.Error
}

func (r *SparePartRepository) TotalForOrder(orderID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&entity.SparePart{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
