package services

import (
	"errors"

	"github.com/sundap1986/Vehicle-Repair-Order-System/entity"
	"github.com/sundap1986/Vehicle-Repair-Order-System/repository"
	"gorm.io/gorm"
)

var ErrLineItemNotFound = errors.New("line item not found")

// LineItemService covers the billable rows hanging off an order:
// spare parts and labor details. Amounts are always recomputed here,
// never taken from the client.
type LineItemService struct {
	DB     *gorm.DB
	Orders *repository.RepairOrderRepository
	Parts  *repository.SparePartRepository
	Labor  *repository.LaborDetailRepository
}

func NewLineItemService(db *gorm.DB) *LineItemService {
	return &LineItemService{
		DB:     db,
		Orders: repository.NewRepairOrderRepository(db),
		Parts:  repository.NewSparePartRepository(db),
		Labor:  repository.NewLaborDetailRepository(db),
	}
}

// ----- DTOs from Controller -----

type AddSparePartReq struct {
	PartDescription string  `form:"part_description" json:"part_description" binding:"required"`
	PartNumber      string  `form:"part_number" json:"part_number" binding:"required"`
	Make            string  `form:"make" json:"make" binding:"required"`
	// numeric fields carry no required tag: gin treats a legitimate 0 as absent
	UnitCost float64 `form:"unit_cost" json:"unit_cost"`
	Quantity int     `form:"quantity" json:"quantity" binding:"min=0"`
}

type AddLaborReq struct {
	Description  string  `form:"description" json:"description" binding:"required"`
	LaborCharges float64 `form:"labor_charges" json:"labor_charges"` // optional, 0 when blank
	OutsideLabor float64 `form:"outside_labor" json:"outside_labor"` // optional, 0 when blank
}

func (s *LineItemService) orderMustExist(orderID uint) error {
	ok, err := s.Orders.Exists(orderID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}

// ----- Spare parts -----

func (s *LineItemService) AddSparePart(orderID uint, req *AddSparePartReq) (*entity.SparePart, error) {
	if err := s.orderMustExist(orderID); err != nil {
		return nil, err
	}
	p := entity.SparePart{
		OrderID:         orderID,
		PartDescription: req.PartDescription,
		PartNumber:      req.PartNumber,
		Make:            req.Make,
		UnitCost:        req.UnitCost,
		Quantity:        req.Quantity,
		Amount:          req.UnitCost * float64(req.Quantity),
	}
	if err := s.Parts.Create(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *LineItemService) DeleteSparePart(partID, orderID uint) error {
	affected, err := s.Parts.Delete(partID, orderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLineItemNotFound
	}
	return nil
}

// ----- Labor details -----

func (s *LineItemService) AddLabor(orderID uint, req *AddLaborReq) (*entity.LaborDetail, error) {
	if err := s.orderMustExist(orderID); err != nil {
		return nil, err
	}
	l := entity.LaborDetail{
		OrderID:      orderID,
		Description:  req.Description,
		LaborCharges: req.LaborCharges,
		OutsideLabor: req.OutsideLabor,
		Amount:       req.LaborCharges + req.OutsideLabor,
	}
	if err := s.Labor.Create(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *LineItemService) DeleteLabor(laborID, orderID uint) error {
	affected, err := s.Labor.Delete(laborID, orderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLineItemNotFound
	}
	return nil
}
