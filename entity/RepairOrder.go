package entity

import (
	"time"
)

// Status values a repair order can carry. The intake path always starts
// at Open; UpdateStatus rejects anything outside this set.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"
)

func OrderStatuses() []string {
	return []string{StatusOpen, StatusInProgress, StatusClosed}
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

type RepairOrder struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrderNumber string `json:"order_number" gorm:"uniqueIndex;size:50"` // RO-YYYYMMDD-HHMMSS, immutable

	RegNumber           string  `json:"reg_number"`
	VinNumber           string  `json:"vin_number"`
	Kms                 int     `json:"kms"`
	VehicleInDate       string  `json:"vehicle_in_date"`
	VehicleInTime       string  `json:"vehicle_in_time"`
	Make                string  `json:"make"`
	Model               string  `json:"model"`
	DriverName          string  `json:"driver_name"`
	PhoneNumber         string  `json:"phone_number"`
	VehicleCameFromSite string  `json:"vehicle_came_from_site"`
	SiteInchargeName    string  `json:"site_incharge_name"`
	DriverPermanent     string  `json:"driver_permanent"`
	RoadTestAlong       string  `json:"road_test_along"`
	ServiceType         string  `json:"service_type"`
	UnderWarranty       string  `json:"under_warranty"`
	RepairEstimationCost float64 `json:"repair_estimation_cost"`
	ExpectedDeliveryDate string  `json:"expected_delivery_date"`
	ExpectedDeliveryTime string  `json:"expected_delivery_time"`
	AllottedTechnician   string  `json:"allotted_technician"`

	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status" gorm:"size:20;default:'Open'"`

	SpareParts   []SparePart   `json:"-" gorm:"foreignKey:OrderID"`
	LaborDetails []LaborDetail `json:"-" gorm:"foreignKey:OrderID"`
	VehicleCheck *VehicleCheck `json:"-" gorm:"foreignKey:OrderID"`
}

func (RepairOrder) TableName() string {
	return "repair_orders"
}
