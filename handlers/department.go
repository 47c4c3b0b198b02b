// File: handlers/department.go
package handlers

import (
	"net/http"

	"medicore/models"
	"medicore/services/department"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler exposes department CRUD.
type DepartmentHandler struct {
	Departments department.DepartmentService
}

// NewDepartmentHandler constructs a DepartmentHandler.
func NewDepartmentHandler(svc department.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{Departments: svc}
}

// CreateHandler handles POST /api/departments (admin).
func (h *DepartmentHandler) CreateHandler(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dept, err := h.Departments.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dept)
}

// UpdateHandler handles PUT /api/departments/:id (admin).
func (h *DepartmentHandler) UpdateHandler(c *gin.Context) {
	var req models.Department
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")

	dept, err := h.Departments.Update(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dept)
}

// DeleteHandler handles DELETE /api/departments/:id (admin).
func (h *DepartmentHandler) DeleteHandler(c *gin.Context) {
	if err := h.Departments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Department deleted"})
}

// GetHandler handles GET /api/departments/:id.
func (h *DepartmentHandler) GetHandler(c *gin.Context) {
	dept, err := h.Departments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dept)
}

// ListHandler handles GET /api/departments.
func (h *DepartmentHandler) ListHandler(c *gin.Context) {
	depts, err := h.Departments.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, depts)
}
