// File: handlers/diagnosis.go
package handlers

import (
	"errors"
	"net/http"

	"medicore/models"
	"medicore/services/diagnosis"

	"github.com/gin-gonic/gin"
)

// DiagnosisHandler exposes clinical record management.
type DiagnosisHandler struct {
	Diagnoses diagnosis.DiagnosisService
}

// NewDiagnosisHandler constructs a DiagnosisHandler.
func NewDiagnosisHandler(svc diagnosis.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{Diagnoses: svc}
}

// CreateHandler handles POST /api/diagnoses (doctor).
func (h *DiagnosisHandler) CreateHandler(c *gin.Context) {
	var req models.Diagnosis
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.Diagnoses.Create(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// UpdateHandler handles PUT /api/diagnoses/:id (doctor).
func (h *DiagnosisHandler) UpdateHandler(c *gin.Context) {
	var req models.Diagnosis
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")

	d, err := h.Diagnoses.Update(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		if errors.Is(err, diagnosis.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetHandler handles GET /api/diagnoses/:id.
func (h *DiagnosisHandler) GetHandler(c *gin.Context) {
	d, err := h.Diagnoses.Get(c.Request.Context(), c.Param("id"), c.GetString("userID"), c.GetString("userRole"))
	if err != nil {
		if errors.Is(err, diagnosis.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// ListMineHandler handles GET /api/diagnoses: a doctor sees records
// they authored, a patient their own history.
func (h *DiagnosisHandler) ListMineHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var (
		records []models.Diagnosis
		err     error
	)
	if c.GetString("userRole") == models.RoleDoctor {
		records, err = h.Diagnoses.ListForDoctor(c.Request.Context(), userID)
	} else {
		records, err = h.Diagnoses.ListForPatient(c.Request.Context(), userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListForPatientHandler handles GET /api/diagnoses/patient/:id (doctor/admin).
func (h *DiagnosisHandler) ListForPatientHandler(c *gin.Context) {
	records, err := h.Diagnoses.ListForPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}
