package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sundap1986/Vehicle-Repair-Order-System/entity"
	"github.com/sundap1986/Vehicle-Repair-Order-System/pkg/resp"
	"github.com/sundap1986/Vehicle-Repair-Order-System/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Svc: services.NewOrderService(db)}
}

func orderParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		resp.BadRequest(c, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

func redirectToOrder(c *gin.Context, orderID uint) {
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/order/%d", orderID))
}

// GET /
func (oc *OrderController) Index(c *gin.Context) {
	orders, err := oc.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /create_order — form metadata for the intake page
func (oc *OrderController) CreateForm(c *gin.Context) {
	resp.OK(c, gin.H{"statuses": entity.OrderStatuses(), "default_status": entity.StatusOpen})
}

// POST /create_order
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	redirectToOrder(c, out.ID)
}

// GET /order/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := orderParam(c, "id")
	if !ok {
		return
	}

	detail, err := oc.Svc.Detail(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /update_status/:id
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := orderParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `form:"status" json:"status" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Svc.UpdateStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, "status must be one of Open, In Progress, Closed")
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	redirectToOrder(c, id)
}

// GET /api/order_totals/:id — flat JSON, consumed by the detail page script
func (oc *OrderController) Totals(c *gin.Context) {
	id, ok := orderParam(c, "id")
	if !ok {
		return
	}

	exists, err := oc.Svc.Orders.Exists(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !exists {
		resp.NotFound(c, "order not found")
		return
	}

	totals, err := oc.Svc.Totals(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
