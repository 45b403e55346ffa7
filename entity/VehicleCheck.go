package entity

// VehicleCheck is the intake inspection checklist, one row per repair order.
// Every field is free text; the form leaves unchecked items blank.
type VehicleCheck struct {
	ID uint `json:"id" gorm:"primaryKey"`

	OrderID uint        `json:"order_id" gorm:"index"`
	Order   RepairOrder `json:"-"`

	OilLevel              string `json:"oil_level"`
	HousingOilLevel       string `json:"housing_oil_level"`
	ClutchOilLevel        string `json:"clutch_oil_level"`
	BatteryLightsCheck    string `json:"battery_lights_check"`
	GeneralChecksDone     string `json:"general_checks_done"`
	StepneyCondition      string `json:"stepney_condition"`
	SteeringOilLevel      string `json:"steering_oil_level"`
	OtherOilLeakages      string `json:"other_oil_leakages"`
	TyresStepneyCondition string `json:"tyres_stepney_condition"`
}

func (VehicleCheck) TableName() string {
	return "vehicle_checks"
}
