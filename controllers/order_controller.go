package controllers

import (
	"errors"

	"github.com/BtJ-gogo/meta-back-end-developer/pkg/resp"
	"github.com/BtJ-gogo/meta-back-end-developer/services"
	"github.com/BtJ-gogo/meta-back-end-developer/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /api/orders — role-scoped listing
func (h *OrderController) List(c *gin.Context) {
	u := utils.Principal(c)
	out, err := h.Svc.List(u)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /api/orders — place an order from the caller's cart
func (h *OrderController) Create(c *gin.Context) {
	u := utils.Principal(c)

	if err := h.Svc.PlaceFromCart(u.ID); err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			resp.NotFound(c, "Cart is empty")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.CreatedMessage(c, "Order created successfully")
}

// GET /api/orders/:id — role-scoped detail
func (h *OrderController) Detail(c *gin.Context) {
	u := utils.Principal(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.Svc.Detail(u, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "No order found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /api/orders/:id — manager reassigns the delivery crew
func (h *OrderController) Assign(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.AssignCrewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.AssignCrew(id, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "No order found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OKMessage(c, "Delivery crew assigned")
}

// PATCH /api/orders/:id — status-only update
func (h *OrderController) UpdateStatus(c *gin.Context) {
	u := utils.Principal(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateStatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateStatus(u, id, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "No order found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Order status updated")
}

// DELETE /api/orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "No order found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, "Order deleted successfully")
}
