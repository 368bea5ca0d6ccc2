package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janebaby34221-collab/Superapp/entity"
	"github.com/janebaby34221-collab/Superapp/pkg/resp"
	"github.com/janebaby34221-collab/Superapp/services"
	"github.com/janebaby34221-collab/Superapp/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func safeUser(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "name": u.Name,
		"phone": u.Phone, "role": u.Role, "createdAt": u.CreatedAt,
	}
}

// POST /register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.auth.Register(req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, safeUser(user))
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.auth.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  safeUser(user),
	})
}

// GET /me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.auth.Profile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, safeUser(user))
}
