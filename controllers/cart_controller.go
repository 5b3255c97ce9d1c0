package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
	"github.com/Sridharj9095/amirtham-cooldrinks/pkg/resp"
	"github.com/Sridharj9095/amirtham-cooldrinks/services"
)

type CartController struct {
	Cart *services.CartService
	Menu *services.MenuService
}

func NewCartController(cart *services.CartService, menu *services.MenuService) *CartController {
	return &CartController{Cart: cart, Menu: menu}
}

type cartState struct {
	Items             []entity.LineItem `json:"items"`
	TotalAmount       float64           `json:"totalAmount"`
	TotalItems        int               `json:"totalItems"`
	ActiveOrderID     string            `json:"activeOrderId"`
	HasUnsavedChanges bool              `json:"hasUnsavedChanges"`
	Warning           string            `json:"warning,omitempty"`
}

func (ctl *CartController) state(warning string) cartState {
	items := ctl.Cart.Items()
	var count int
	for _, it := range items {
		count += it.Quantity
	}
	activeID, _ := ctl.Cart.ActiveOrderID()
	return cartState{
		Items:             items,
		TotalAmount:       entity.LineTotal(items),
		TotalItems:        count,
		ActiveOrderID:     activeID,
		HasUnsavedChanges: ctl.Cart.HasUnsavedChanges(),
		Warning:           warning,
	}
}

// Storage write failures are non-fatal: the caller gets the state plus a
// warning, never a 5xx.
func (ctl *CartController) respondState(c *gin.Context, err error) {
	warning := ""
	if err != nil {
		if !errors.Is(err, services.ErrStorageUnavailable) {
			resp.ServerError(c, err)
			return
		}
		warning = err.Error()
	}
	resp.OK(c, ctl.state(warning))
}

// GET /api/cart
func (ctl *CartController) Get(c *gin.Context) {
	ctl.respondState(c, nil)
}

// POST /api/cart/items
func (ctl *CartController) Add(c *gin.Context) {
	var req struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Menu.Get(req.ItemID)
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	_, err = ctl.Cart.AddItem(m)
	ctl.respondState(c, err)
}

// PATCH /api/cart/items/qty
func (ctl *CartController) SetQuantity(c *gin.Context) {
	var req struct {
		ItemID   string `json:"itemId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	_, err := ctl.Cart.SetQuantity(req.ItemID, req.Quantity)
	ctl.respondState(c, err)
}

// DELETE /api/cart/items/:id
func (ctl *CartController) RemoveItem(c *gin.Context) {
	_, err := ctl.Cart.RemoveItem(c.Param("id"))
	ctl.respondState(c, err)
}

// DELETE /api/cart
func (ctl *CartController) Clear(c *gin.Context) {
	ctl.respondState(c, ctl.Cart.Clear())
}
