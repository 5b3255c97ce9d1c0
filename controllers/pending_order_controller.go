package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sridharj9095/amirtham-cooldrinks/pkg/resp"
	"github.com/Sridharj9095/amirtham-cooldrinks/services"
)

type PendingOrderController struct {
	Cart *services.CartService
}

func NewPendingOrderController(cart *services.CartService) *PendingOrderController {
	return &PendingOrderController{Cart: cart}
}

// GET /api/pending-orders
func (ctl *PendingOrderController) List(c *gin.Context) {
	resp.OK(c, ctl.Cart.ListOrders())
}

// GET /api/pending-orders/:id
func (ctl *PendingOrderController) Get(c *gin.Context) {
	po, ok := ctl.Cart.GetOrder(c.Param("id"))
	if !ok {
		resp.NotFound(c, "pending order not found")
		return
	}
	resp.OK(c, po)
}

// POST /api/pending-orders
// Saves the current cart under a name and clears the cart so the next
// customer starts fresh. The "save and start fresh" flow.
func (ctl *PendingOrderController) Save(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := ctl.Cart.SaveCurrentCartAs(req.Name, ctl.Cart.Items())
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, services.ErrStorageUnavailable) {
			resp.OK(c, gin.H{"id": id, "warning": err.Error()})
			return
		}
		resp.ServerError(c, err)
		return
	}
	if err := ctl.Cart.Clear(); err != nil && !errors.Is(err, services.ErrStorageUnavailable) {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": id})
}

// PUT /api/pending-orders/:id
// Saves cart edits back into the pending order; the cart stays loaded.
func (ctl *PendingOrderController) Update(c *gin.Context) {
	id := c.Param("id")
	if _, ok := ctl.Cart.GetOrder(id); !ok {
		resp.NotFound(c, "pending order not found")
		return
	}
	if err := ctl.Cart.UpdateOrder(id, ctl.Cart.Items()); err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			resp.OK(c, gin.H{"warning": err.Error()})
			return
		}
		resp.ServerError(c, err)
		return
	}
	po, _ := ctl.Cart.GetOrder(id)
	resp.OK(c, po)
}

// DELETE /api/pending-orders/:id
func (ctl *PendingOrderController) Delete(c *gin.Context) {
	if err := ctl.Cart.RemoveOrder(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			resp.OK(c, gin.H{"warning": err.Error()})
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "pending order deleted"})
}

// POST /api/pending-orders/:id/load
// Replaces the cart with the pending order's snapshot and links them.
// Confirmation of discarded edits is the UI's job, not enforced here.
func (ctl *PendingOrderController) Load(c *gin.Context) {
	items, err := ctl.Cart.LoadOrder(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "pending order not found")
		case errors.Is(err, services.ErrStorageUnavailable):
			resp.OK(c, gin.H{"items": items, "warning": err.Error()})
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"items": items})
}
