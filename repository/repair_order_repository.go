package repository

import (
	"github.com/sundap1986/Vehicle-Repair-Order-System/entity"
	"gorm.io/gorm"
)

type RepairOrderRepository struct {
	DB *gorm.DB
}

func NewRepairOrderRepository(db *gorm.DB) *RepairOrderRepository {
	return &RepairOrderRepository{DB: db}
}

func (r *RepairOrderRepository) Create(tx *gorm.DB, o *entity.RepairOrder) error {
	return tx.Create(o).Error
}

func (r *RepairOrderRepository) Get(orderID uint) (*entity.RepairOrder, error) {
	var o entity.RepairOrder
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns every order, most recent intake first.
func (r *RepairOrderRepository) List() ([]entity.RepairOrder, error) {
	var out []entity.RepairOrder
	err := r.DB.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *RepairOrderRepository) Exists(orderID uint) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.RepairOrder{}).Where("id = ?", orderID).Count(&n).Error
	return n > 0, err
}

// UpdateStatus overwrites the status field and reports how many rows
// matched, so callers can tell a missing order from a clean write.
func (r *RepairOrderRepository) UpdateStatus(orderID uint, status string) (int64, error) {
	res := r.DB.Model(&entity.RepairOrder{}).
		Where("id = ?", orderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}
