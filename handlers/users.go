package handlers

import (
	"net/http"

	"turfadmin/models"

	"github.com/gin-gonic/gin"
)

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err, httpStatus, "Failed to fetch users")
		return
	}
	succeed(c, gin.H{"users": users})
}

// CreateUserHandler handles POST /api/admin/users.
func (h *AdminHandler) CreateUserHandler(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.Service.CreateUser(c.Request.Context(), user)
	if err != nil {
		h.respondError(c, err, httpStatus, "Failed to create user")
		return
	}
	succeed(c, gin.H{"user": created})
}

// UpdateUserHandler handles PUT /api/admin/users/:id.
func (h *AdminHandler) UpdateUserHandler(c *gin.Context) {
	var update map[string]any
	if err := c.ShouldBindJSON(&update); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.Service.UpdateUser(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.respondError(c, err, httpStatus, "Failed to update user")
		return
	}
	succeed(c, gin.H{"user": user})
}

// DeleteUserHandler handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, httpStatus, "Failed to delete user")
		return
	}
	succeed(c, nil)
}
