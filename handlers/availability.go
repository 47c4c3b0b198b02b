// File: handlers/availability.go
package handlers

import (
	"net/http"

	"medicore/services/availability"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the advisory slot computation.
type AvailabilityHandler struct {
	Availability availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: svc}
}

// DoctorAvailabilityHandler handles GET /api/availability/doctor/:id?date=YYYY-MM-DD.
func (h *AvailabilityHandler) DoctorAvailabilityHandler(c *gin.Context) {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'date' must be YYYY-MM-DD"})
		return
	}

	result, err := h.Availability.GetDoctorAvailability(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		utils.GetLogger().Error("availability lookup failed",
			zap.String("doctorID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DepartmentAvailabilityHandler handles GET /api/availability/department/:id?date=YYYY-MM-DD,
// the "any available doctor" variant.
func (h *AvailabilityHandler) DepartmentAvailabilityHandler(c *gin.Context) {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'date' must be YYYY-MM-DD"})
		return
	}

	results, err := h.Availability.GetDepartmentAvailability(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		utils.GetLogger().Error("department availability lookup failed",
			zap.String("departmentID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": results})
}
