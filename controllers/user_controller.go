package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/janebaby34221-collab/Superapp/pkg/resp"
	"github.com/janebaby34221-collab/Superapp/services"
)

type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GET /users (admin)
func (u *UserController) List(c *gin.Context) {
	users, err := u.users.List()
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, safeUser(&users[i]))
	}
	resp.OK(c, out)
}

// POST /create-admin (superadmin)
func (u *UserController) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	admin, err := u.users.CreateAdmin(req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, safeUser(admin))
}

// PATCH /users/:id/promote (superadmin)
func (u *UserController) Promote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	user, err := u.users.Promote(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, safeUser(user))
}

// DELETE /users/:id (superadmin, reserved account protected)
func (u *UserController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	if err := u.users.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
