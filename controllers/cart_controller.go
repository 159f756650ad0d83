package controllers

import (
	"errors"

	"github.com/BtJ-gogo/meta-back-end-developer/pkg/resp"
	"github.com/BtJ-gogo/meta-back-end-developer/services"
	"github.com/BtJ-gogo/meta-back-end-developer/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /api/cart/menu-items
func (h *CartController) List(c *gin.Context) {
	u := utils.Principal(c)
	lines, err := h.Svc.List(u.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, lines)
}

// POST /api/cart/menu-items
// The owner is always the caller; any client-supplied user is ignored.
func (h *CartController) Add(c *gin.Context) {
	u := utils.Principal(c)

	var req services.AddCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.Add(u.ID, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "No Menu item found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, line)
}

// DELETE /api/cart/menu-items — bulk clear
func (h *CartController) Clear(c *gin.Context) {
	u := utils.Principal(c)

	if err := h.Svc.Clear(u.ID); err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			resp.NotFound(c, "Cart is empty")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Cart items is deleted")
}
