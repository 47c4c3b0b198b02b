// File: handlers/assignment.go
package handlers

import (
	"net/http"

	"medicore/services/assignment"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler exposes doctor-patient assignment management.
type AssignmentHandler struct {
	Assignments assignment.AssignmentService
}

// NewAssignmentHandler constructs an AssignmentHandler.
func NewAssignmentHandler(svc assignment.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Assignments: svc}
}

// AssignHandler handles POST /api/assignments (admin).
func (h *AssignmentHandler) AssignHandler(c *gin.Context) {
	var req struct {
		DoctorID  string `json:"doctorId" binding:"required"`
		PatientID string `json:"patientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.Assignments.Assign(c.Request.Context(), req.DoctorID, req.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// UnassignHandler handles DELETE /api/assignments/:id (admin).
func (h *AssignmentHandler) UnassignHandler(c *gin.Context) {
	if err := h.Assignments.Unassign(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment removed"})
}

// MyPatientsHandler handles GET /api/assignments/patients (doctor).
func (h *AssignmentHandler) MyPatientsHandler(c *gin.Context) {
	patients, err := h.Assignments.PatientsOfDoctor(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

// MyDoctorsHandler handles GET /api/assignments/doctors (patient).
func (h *AssignmentHandler) MyDoctorsHandler(c *gin.Context) {
	doctors, err := h.Assignments.DoctorsOfPatient(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}
