package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/entity"
	"github.com/Sridharj9095/amirtham-cooldrinks/pkg/resp"
	"github.com/Sridharj9095/amirtham-cooldrinks/services"
	"github.com/Sridharj9095/amirtham-cooldrinks/utils"
)

type MenuController struct {
	Svc       *services.MenuService
	UploadDir string
}

func NewMenuController(svc *services.MenuService, uploadDir string) *MenuController {
	return &MenuController{Svc: svc, UploadDir: uploadDir}
}

// GET /api/menu-items
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	m, err := ctl.Svc.Get(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, m)
}

// POST /api/menu-items
func (ctl *MenuController) Create(c *gin.Context) {
	var req entity.MenuItem
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	img, err := utils.SaveDataURLImage(req.Image, ctl.UploadDir)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.Image = img
	if err := ctl.Svc.Create(&req); err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, req)
}

// PUT /api/menu-items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	var req entity.MenuItem
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	img, err := utils.SaveDataURLImage(req.Image, ctl.UploadDir)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.Image = img
	m, err := ctl.Svc.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /api/menu-items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	if err := ctl.Svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
