// File: handlers/user.go
package handlers

import (
	"net/http"

	"medicore/models"
	"medicore/services/user"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account CRUD.
type UserHandler struct {
	UserService user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// CreateUserHandler handles POST /api/users (admin). Unlike public
// registration it may provision accounts of any role.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req models.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.UserService.CreateUser(req)
	if err != nil {
		utils.GetLogger().Error("User creation failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetUserByIDHandler handles GET /api/users/:id. Admins may fetch
// anyone; other callers only themselves.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	id := c.Param("id")
	if c.GetString("userRole") != models.RoleAdmin && c.GetString("userID") != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this account"})
		return
	}

	usr, err := h.UserService.GetUserByID(id)
	if err != nil {
		utils.GetLogger().Error("User not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ListUsersHandler handles GET /api/users (admin). An optional ?role=
// filter narrows to one role.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	role := c.Query("role")

	var (
		users []models.User
		err   error
	)
	if role != "" {
		users, err = h.UserService.GetUsersByRole(role)
	} else {
		users, err = h.UserService.GetAllUsers()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListDoctorsHandler handles GET /api/doctors, the public directory
// used by the booking UI.
func (h *UserHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.UserService.GetUsersByRole(models.RoleDoctor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// UpdateUserHandler handles PUT /api/users/:id.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	id := c.Param("id")
	if c.GetString("userRole") != models.RoleAdmin && c.GetString("userID") != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to update this account"})
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = id

	usr, err := h.UserService.UpdateUser(req)
	if err != nil {
		utils.GetLogger().Error("Update error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/users/:id (admin).
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.UserService.DeleteUser(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
