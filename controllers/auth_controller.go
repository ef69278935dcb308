package controllers

import (
	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/services"
	"github.com/Dung-L3/SEP490-G20-sub000/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`
}

// POST /auth/register (admin)
func (ac *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	staff, err := ac.Service.Register(req.Email, req.Password, req.FullName, req.Role, req.Phone)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, staff)
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, staff, err := ac.Service.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "staff": staff})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	staff, err := ac.Service.Profile(utils.CurrentStaffID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, staff)
}

type updateMeReq struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// PATCH /auth/me
func (ac *AuthController) UpdateMe(c *gin.Context) {
	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	staff, err := ac.Service.UpdateProfile(utils.CurrentStaffID(c), updates)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, staff)
}

type resetRequestReq struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /auth/password-reset/request
func (ac *AuthController) RequestReset(c *gin.Context) {
	var req resetRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Service.RequestPasswordReset(req.Email); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"sent": true})
}

type resetReq struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// POST /auth/password-reset
func (ac *AuthController) Reset(c *gin.Context) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Service.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"reset": true})
}
