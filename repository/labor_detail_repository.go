package repository

import (
	"github.com/sundap1986/Vehicle-Repair-Order-System/entity"
	"gorm.io/gorm"
)

type LaborDetailRepository struct {
	DB *gorm.DB
}

func NewLaborDetailRepository(db *gorm.DB) *LaborDetailRepository {
	return &LaborDetailRepository{DB: db}
}

func (r *LaborDetailRepository) Create(l *entity.LaborDetail) error {
	return r.DB.Create(l).Error
}

func (r *LaborDetailRepository) ListForOrder(orderID uint) ([]entity.LaborDetail, error) {
	var out []entity.LaborDetail
	err := r.DB.Where("order_id = ?", orderID).Find(&out).Error
	return out, err
}

func (r *LaborDetailRepository) Delete(laborID, orderID uint) (int64, error) {
	res := r.DB.Where("id = ? AND order_id = ?", laborID, orderID).
		Delete(&entity.LaborDetail{})
	return res.RowsAffected, res.Error
}

func (r *LaborDetailRepository) TotalForOrder(orderID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&entity.LaborDetail{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
