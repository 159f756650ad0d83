package controllers

import (
	"errors"

	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/BtJ-gogo/meta-back-end-developer/pkg/resp"
	"github.com/BtJ-gogo/meta-back-end-developer/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RosterController serves one role's roster; one instance per role.
type RosterController struct {
	Svc      *services.RosterService
	Role     entity.Role
	emptyMsg string
}

func NewRosterController(s *services.RosterService, role entity.Role) *RosterController {
	return &RosterController{
		Svc:      s,
		Role:     role,
		emptyMsg: "No " + string(role) + " found",
	}
}

// GET /api/groups/{role}/users
func (h *RosterController) List(c *gin.Context) {
	users, err := h.Svc.List(h.Role)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /api/groups/{role}/users
func (h *RosterController) Create(c *gin.Context) {
	var req services.CreateRosterUserIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Create(h.Role, &req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, user)
}

// DELETE /api/groups/{role}/users/:id — membership only, the account
// survives
func (h *RosterController) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Svc.Remove(h.Role, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, h.emptyMsg)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OKMessage(c, string(h.Role)+" removed successfully")
}
