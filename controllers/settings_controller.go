package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Sridharj9095/amirtham-cooldrinks/pkg/resp"
	"github.com/Sridharj9095/amirtham-cooldrinks/services"
)

type SettingsController struct {
	Svc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Svc: svc}
}

// GET /api/settings
func (ctl *SettingsController) Get(c *gin.Context) {
	s, err := ctl.Svc.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

// PUT /api/settings
func (ctl *SettingsController) Update(c *gin.Context) {
	var req services.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s, err := ctl.Svc.Update(req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

// GET /api/settings/upi-id
func (ctl *SettingsController) GetUpiID(c *gin.Context) {
	id, err := ctl.Svc.UpiID()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"upiId": id})
}

// PUT /api/settings/upi-id
func (ctl *SettingsController) SetUpiID(c *gin.Context) {
	var req struct {
		UpiID string `json:"upiId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s, err := ctl.Svc.SetUpiID(req.UpiID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"upiId": s.UpiID})
}
