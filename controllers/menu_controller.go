package controllers

import (
	"errors"
	"strconv"

	"github.com/BtJ-gogo/meta-back-end-developer/pkg/resp"
	"github.com/BtJ-gogo/meta-back-end-developer/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// ----- Categories -----

// GET /api/menu-items/category
func (h *MenuController) ListCategories(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /api/menu-items/category
func (h *MenuController) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, cat)
}

// ----- Menu items -----

// GET /api/menu-items?ordering=price&search=
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.ListItems(c.Query("ordering"), c.Query("search"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.Svc.GetItem(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "No Menu item found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/menu-items
func (h *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateItem(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

// PATCH/PUT /api/menu-items/:id — featured toggle only
func (h *MenuController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.UpdateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.SetFeatured(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNoMenuItems) {
			resp.NotFound(c, "No Menu item found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu-items/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteItem(id); err != nil {
		if errors.Is(err, services.ErrNoMenuItems) {
			resp.NotFound(c, "No Menu item found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Menu item deleted")
}

// DELETE /api/menu-items
func (h *MenuController) Clear(c *gin.Context) {
	if err := h.Svc.ClearItems(); err != nil {
		if errors.Is(err, services.ErrNoMenuItems) {
			resp.NotFound(c, "No Menu item found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Menu items deleted")
}
