package controllers

import (
	"errors"

	"github.com/sundap1986/Vehicle-Repair-Order-System/pkg/resp"
	"github.com/sundap1986/Vehicle-Repair-Order-System/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LineItemController struct {
	Svc *services.LineItemService
}

func NewLineItemController(db *gorm.DB) *LineItemController {
	return &LineItemController{Svc: services.NewLineItemService(db)}
}

// POST /add_spare_part/:id
func (lc *LineItemController) AddSparePart(c *gin.Context) {
	orderID, ok := orderParam(c, "id")
	if !ok {
		return
	}

	var req services.AddSparePartReq
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := lc.Svc.AddSparePart(orderID, &req); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	redirectToOrder(c, orderID)
}

// POST /add_labor/:id
func (lc *LineItemController) AddLabor(c *gin.Context) {
	orderID, ok := orderParam(c, "id")
	if !ok {
		return
	}

	var req services.AddLaborReq
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := lc.Svc.AddLabor(orderID, &req); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	redirectToOrder(c, orderID)
}

// GET /delete_spare_part/:partId/:id
func (lc *LineItemController) DeleteSparePart(c *gin.Context) {
	partID, ok := orderParam(c, "partId")
	if !ok {
		return
	}
	orderID, ok := orderParam(c, "id")
	if !ok {
		return
	}

	if err := lc.Svc.DeleteSparePart(partID, orderID); err != nil {
		if errors.Is(err, services.ErrLineItemNotFound) {
			resp.NotFound(c, "spare part not found for this order")
			return
		}
		resp.ServerError(c, err)
		return
	}
	redirectToOrder(c, orderID)
}

// GET /delete_labor/:laborId/:id
func (lc *LineItemController) DeleteLabor(c *gin.Context) {
	laborID, ok := orderParam(c, "laborId")
	if !ok {
		return
	}
	orderID, ok := orderParam(c, "id")
	if !ok {
		return
	}

	if err := lc.Svc.DeleteLabor(laborID, orderID); err != nil {
		if errors.Is(err, services.ErrLineItemNotFound) {
			resp.NotFound(c, "labor detail not found for this order")
			return
		}
		resp.ServerError(c, err)
		return
	}
	redirectToOrder(c, orderID)
}
