package entity

type SparePart struct {
	ID uint `json:"id" gorm:"primaryKey"`

	OrderID uint        `json:"order_id" gorm:"index"`
	Order   RepairOrder `json:"-"`

	PartDescription string  `json:"part_description"`
	PartNumber      string  `json:"part_number"`
	Make            string  `json:"make"`
	UnitCost        float64 `json:"unit_cost"`
	Quantity        int     `json:"quantity"`
	// amount = unit_cost * quantity, recomputed by the writer on every insert
	Amount float64 `json:"amount"`
}

func (SparePart) TableName() string {
	return "spare_parts"
}
