package controllers

import (
	"github.com/adeanumainah/coffe-corner/pkg/resp"
	"github.com/adeanumainah/coffe-corner/services"
	"github.com/adeanumainah/coffe-corner/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.Register(req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{
		"username": user.Username, "email": user.Email,
		"phone": user.Phone, "role": user.Role,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sess, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, sess)
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.Svc.Logout(); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	sess, err := a.Svc.Current()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, sess)
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req services.ProfileUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.UpdateProfile(utils.CurrentUsername(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"username": user.Username, "email": user.Email,
		"phone": user.Phone, "profileImage": user.ProfileImage,
	})
}
