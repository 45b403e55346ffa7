package repository

import (
	"errors"

	"github.com/sundap1986/Vehicle-Repair-Order-System/entity"
	"gorm.io/gorm"
)

type VehicleCheckRepository struct {
	DB *gorm.DB
}

func NewVehicleCheckRepository(db *gorm.DB) *VehicleCheckRepository {
	return &VehicleCheckRepository{DB: db}
}

func (r *VehicleCheckRepository) Create(tx *gorm.DB, vc *entity.VehicleCheck) error {
	return tx.Create(vc).Error
}

// GetForOrder returns nil (no error) when the order has no checklist row.
func (r *VehicleCheckRepository) GetForOrder(orderID uint) (*entity.VehicleCheck, error) {
	var vc entity.VehicleCheck
	err := r.DB.Where("order_id = ?", orderID).First(&vc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vc, nil
}
