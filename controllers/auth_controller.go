package controllers

import (
	"errors"

	"github.com/BtJ-gogo/meta-back-end-developer/pkg/resp"
	"github.com/BtJ-gogo/meta-back-end-developer/services"
	"github.com/BtJ-gogo/meta-back-end-developer/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/users
func (h *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(req.Username, req.Email, req.Password)
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

// POST /api/auth/token/login
func (h *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /api/auth/users/me
func (h *AuthController) Me(c *gin.Context) {
	u := utils.Principal(c)
	if u == nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	resp.OK(c, u)
}
