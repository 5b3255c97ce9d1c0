package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/pkg/resp"
	"github.com/Sridharj9095/amirtham-cooldrinks/services"
)

type CategoryController struct {
	Svc *services.CategoryService
}

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: svc}
}

type categoryIn struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// GET /api/categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /api/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Svc.Create(req.Name, req.DisplayOrder)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrDuplicate):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, cat)
}

// PUT /api/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Svc.Update(uint(id), req.Name, req.DisplayOrder)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "category not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, cat)
}

// DELETE /api/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}
