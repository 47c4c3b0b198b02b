// File: handlers/appointment.go
package handlers

import (
	"errors"
	"net/http"

	"medicore/models"
	"medicore/services/appointment"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking lifecycle.
type AppointmentHandler struct {
	Appointments appointment.AppointmentService
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Appointments: svc}
}

// BookHandler handles POST /api/appointments (patient).
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Appointments.Book(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, appointment.ErrNotBookable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("booking failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelHandler handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	err := h.Appointments.Cancel(c.Request.Context(), c.Param("id"), c.GetString("userID"), c.GetString("userRole"))
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, appointment.ErrBadTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// CompleteHandler handles PUT /api/appointments/:id/complete (doctor).
func (h *AppointmentHandler) CompleteHandler(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	// Notes are optional; an empty body is fine.
	_ = c.ShouldBindJSON(&req)

	err := h.Appointments.Complete(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, appointment.ErrBadTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment completed"})
}

// GetHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetHandler(c *gin.Context) {
	appt, err := h.Appointments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if !appointmentVisible(appt, c.GetString("userID"), c.GetString("userRole")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this appointment"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListMineHandler handles GET /api/appointments: a doctor sees their
// calendar, a patient their bookings.
func (h *AppointmentHandler) ListMineHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var (
		appts []models.Appointment
		err   error
	)
	if c.GetString("userRole") == models.RoleDoctor {
		appts, err = h.Appointments.ListByDoctor(c.Request.Context(), userID)
	} else {
		appts, err = h.Appointments.ListByPatient(c.Request.Context(), userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListByDoctorHandler handles GET /api/appointments/doctor/:id (admin).
func (h *AppointmentHandler) ListByDoctorHandler(c *gin.Context) {
	appts, err := h.Appointments.ListByDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListByPatientHandler handles GET /api/appointments/patient/:id (admin).
func (h *AppointmentHandler) ListByPatientHandler(c *gin.Context) {
	appts, err := h.Appointments.ListByPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

func appointmentVisible(appt *models.Appointment, actorID, actorRole string) bool {
	switch actorRole {
	case models.RoleAdmin:
		return true
	case models.RoleDoctor:
		return appt.DoctorID == actorID
	case models.RolePatient:
		return appt.PatientID == actorID
	}
	return false
}
