package entity

type LaborDetail struct {
	ID uint `json:"id" gorm:"primaryKey"`

	OrderID uint        `json:"order_id" gorm:"index"`
	Order   RepairOrder `json:"-"`

	Description  string  `json:"description"`
	LaborCharges float64 `json:"labor_charges"`
	OutsideLabor float64 `json:"outside_labor"`
	// amount = labor_charges + outside_labor
	Amount float64 `json:"amount"`
}

func (LaborDetail) TableName() string {
	return "labor_details"
}
