package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
	"github.com/Sridharj9095/amirtham-cooldrinks/pkg/resp"
	"github.com/Sridharj9095/amirtham-cooldrinks/services"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

type createOrderIn struct {
	OrderNumber string            `json:"orderNumber"`
	Items       []entity.LineItem `json:"items"`
	TotalAmount float64           `json:"totalAmount"`
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req createOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := ctl.Svc.CreateCompleted(c.Request.Context(), req.OrderNumber, req.Items, req.TotalAmount)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /api/orders
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	o, err := ctl.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

// DELETE /api/orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}

type deleteRangeIn struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// DELETE /api/orders/range/by-date
func (ctl *OrderController) DeleteRange(c *gin.Context) {
	var req deleteRangeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	deleted, err := ctl.Svc.DeleteRange(req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "orders deleted", "deletedCount": deleted})
}
