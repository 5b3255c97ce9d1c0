package controllers

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sridharj9095/amirtham-cooldrinks/pkg/resp"
	"github.com/Sridharj9095/amirtham-cooldrinks/services"
)

type BillingController struct {
	Cart    *services.CartService
	Orders  *services.OrderService
	Timeout time.Duration
}

func NewBillingController(cart *services.CartService, orders *services.OrderService, timeout time.Duration) *BillingController {
	return &BillingController{Cart: cart, Orders: orders, Timeout: timeout}
}

// POST /api/checkout
// Persists the cart as a completed order, then settles local state: cart
// cleared, active link dropped, backing pending order removed. A failed
// order leaves everything untouched so staff can retry.
func (ctl *BillingController) Checkout(c *gin.Context) {
	var req struct {
		OrderNumber string `json:"orderNumber"`
	}
	// body is optional; an empty order number gets generated
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Cart.Checkout(c.Request.Context(), req.OrderNumber, ctl.Orders, ctl.Timeout)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}
