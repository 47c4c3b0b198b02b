// File: handlers/schedule.go
package handlers

import (
	"net/http"

	"medicore/models"
	"medicore/services/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes weekly schedule management.
type ScheduleHandler struct {
	ScheduleService schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{ScheduleService: svc}
}

// SetScheduleHandler handles PUT /api/doctors/:id/schedule. Doctors
// may only write their own schedule; admins anyone's.
func (h *ScheduleHandler) SetScheduleHandler(c *gin.Context) {
	doctorID := c.Param("id")
	role := c.GetString("userRole")
	if role == models.RoleDoctor && c.GetString("userID") != doctorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Doctors may only edit their own schedule"})
		return
	}

	var req models.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sched, err := h.ScheduleService.SetWeeklySchedule(c.Request.Context(), doctorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sched)
}

// GetScheduleHandler handles GET /api/doctors/:id/schedule.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	sched, err := h.ScheduleService.GetWeeklySchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sched)
}
