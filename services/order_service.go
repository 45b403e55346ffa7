package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sundap1986/Vehicle-Repair-Order-System/entity"
	"github.com/sundap1986/Vehicle-Repair-Order-System/repository"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid status")
)

type OrderService struct {
	DB     *gorm.DB
	Orders *repository.RepairOrderRepository
	Parts  *repository.SparePartRepository
	Labor  *repository.LaborDetailRepository
	Checks *repository.VehicleCheckRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:     db,
		Orders: repository.NewRepairOrderRepository(db),
		Parts:  repository.NewSparePartRepository(db),
		Labor:  repository.NewLaborDetailRepository(db),
		Checks: repository.NewVehicleCheckRepository(db),
	}
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	RegNumber           string  `form:"reg_number" json:"reg_number" binding:"required"`
	VinNumber           string  `form:"vin_number" json:"vin_number" binding:"required"`
	Kms                 int     `form:"kms" json:"kms"` // defaults to 0 when the form leaves it blank
	VehicleInDate       string  `form:"vehicle_in_date" json:"vehicle_in_date" binding:"required"`
	VehicleInTime       string  `form:"vehicle_in_time" json:"vehicle_in_time" binding:"required"`
	Make                string  `form:"make" json:"make" binding:"required"`
	Model               string  `form:"model" json:"model" binding:"required"`
	DriverName          string  `form:"driver_name" json:"driver_name" binding:"required"`
	PhoneNumber         string  `form:"phone_number" json:"phone_number" binding:"required"`
	VehicleCameFromSite string  `form:"vehicle_came_from_site" json:"vehicle_came_from_site" binding:"required"`
	SiteInchargeName    string  `form:"site_incharge_name" json:"site_incharge_name" binding:"required"`
	DriverPermanent     string  `form:"driver_permanent" json:"driver_permanent" binding:"required"`
	RoadTestAlong       string  `form:"road_test_along" json:"road_test_along" binding:"required"`
	ServiceType         string  `form:"service_type" json:"service_type" binding:"required"`
	UnderWarranty       string  `form:"under_warranty" json:"under_warranty" binding:"required"`
	RepairEstimationCost float64 `form:"repair_estimation_cost" json:"repair_estimation_cost"`
	ExpectedDeliveryDate string  `form:"expected_delivery_date" json:"expected_delivery_date" binding:"required"`
	ExpectedDeliveryTime string  `form:"expected_delivery_time" json:"expected_delivery_time" binding:"required"`
	AllottedTechnician   string  `form:"allotted_technician" json:"allotted_technician" binding:"required"`

	// intake checklist, every field optional
	OilLevel              string `form:"oil_level" json:"oil_level"`
	HousingOilLevel       string `form:"housing_oil_level" json:"housing_oil_level"`
	ClutchOilLevel        string `form:"clutch_oil_level" json:"clutch_oil_level"`
	BatteryLightsCheck    string `form:"battery_lights_check" json:"battery_lights_check"`
	GeneralChecksDone     string `form:"general_checks_done" json:"general_checks_done"`
	StepneyCondition      string `form:"stepney_condition" json:"stepney_condition"`
	SteeringOilLevel      string `form:"steering_oil_level" json:"steering_oil_level"`
	OtherOilLeakages      string `form:"other_oil_leakages" json:"other_oil_leakages"`
	TyresStepneyCondition string `form:"tyres_stepney_condition" json:"tyres_stepney_condition"`
}

type CreateOrderRes struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"order_number"`
}

type OrderTotals struct {
	PartsTotal float64 `json:"parts_total"`
	LaborTotal float64 `json:"labor_total"`
	GrandTotal float64 `json:"grand_total"`
}

type OrderDetail struct {
	Order        *entity.RepairOrder  `json:"order"`
	SpareParts   []entity.SparePart   `json:"spare_parts"`
	LaborDetails []entity.LaborDetail `json:"labor_details"`
	VehicleCheck *entity.VehicleCheck `json:"vehicle_check"`
	Totals       OrderTotals          `json:"totals"`
}

// GenerateOrderNumber derives the human-readable number from the intake
// wall clock: RO-YYYYMMDD-HHMMSS.
func GenerateOrderNumber(t time.Time) string {
	return fmt.Sprintf("RO-%s-%s", t.Format("20060102"), t.Format("150405"))
}

// ----- Create -----

// Create inserts the order and its vehicle check in one transaction so a
// failure between the two writes cannot leave an order without a checklist.
func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	now := time.Now()

	order := entity.RepairOrder{
		OrderNumber:          GenerateOrderNumber(now),
		RegNumber:            req.RegNumber,
		VinNumber:            req.VinNumber,
		Kms:                  req.Kms,
		VehicleInDate:        req.VehicleInDate,
		VehicleInTime:        req.VehicleInTime,
		Make:                 req.Make,
		Model:                req.Model,
		DriverName:           req.DriverName,
		PhoneNumber:          req.PhoneNumber,
		VehicleCameFromSite:  req.VehicleCameFromSite,
		SiteInchargeName:     req.SiteInchargeName,
		DriverPermanent:      req.DriverPermanent,
		RoadTestAlong:        req.RoadTestAlong,
		ServiceType:          req.ServiceType,
		UnderWarranty:        req.UnderWarranty,
		RepairEstimationCost: req.RepairEstimationCost,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		ExpectedDeliveryTime: req.ExpectedDeliveryTime,
		AllottedTechnician:   req.AllottedTechnician,
		CreatedAt:            now,
		Status:               entity.StatusOpen,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.Create(tx, &order); err != nil {
			return err
		}
		check := entity.VehicleCheck{
			OrderID:               order.ID,
			OilLevel:              req.OilLevel,
			HousingOilLevel:       req.HousingOilLevel,
			ClutchOilLevel:        req.ClutchOilLevel,
			BatteryLightsCheck:    req.BatteryLightsCheck,
			GeneralChecksDone:     req.GeneralChecksDone,
			StepneyCondition:      req.StepneyCondition,
			SteeringOilLevel:      req.SteeringOilLevel,
			OtherOilLeakages:      req.OtherOilLeakages,
			TyresStepneyCondition: req.TyresStepneyCondition,
		}
		return s.Checks.Create(tx, &check)
	})
	if err != nil {
		return nil, err
	}
	return &CreateOrderRes{ID: order.ID, OrderNumber: order.OrderNumber}, nil
}

// ----- Read -----

func (s *OrderService) List() ([]entity.RepairOrder, error) {
	return s.Orders.List()
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	order, err := s.Orders.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	parts, err := s.Parts.ListForOrder(orderID)
	if err != nil {
		return nil, err
	}
	labor, err := s.Labor.ListForOrder(orderID)
	if err != nil {
		return nil, err
	}
	check, err := s.Checks.GetForOrder(orderID)
	if err != nil {
		return nil, err
	}
	totals, err := s.Totals(orderID)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{
		Order:        order,
		SpareParts:   parts,
		LaborDetails: labor,
		VehicleCheck: check,
		Totals:       *totals,
	}, nil
}

// Totals sums the stored amount columns; an order without line items
// yields zeros, never nulls.
func (s *OrderService) Totals(orderID uint) (*OrderTotals, error) {
	partsTotal, err := s.Parts.TotalForOrder(orderID)
	if err != nil {
		return nil, err
	}
	laborTotal, err := s.Labor.TotalForOrder(orderID)
	if err != nil {
		return nil, err
	}
	return &OrderTotals{
		PartsTotal: partsTotal,
		LaborTotal: laborTotal,
		GrandTotal: partsTotal + laborTotal,
	}, nil
}

// ----- Status -----

func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	if !entity.IsValidStatus(status) {
		return ErrInvalidStatus
	}
	affected, err := s.Orders.UpdateStatus(orderID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
