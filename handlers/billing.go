// File: handlers/billing.go
package handlers

import (
	"errors"
	"net/http"

	"medicore/models"
	"medicore/services/billing"

	"github.com/gin-gonic/gin"
)

// BillingHandler exposes charge management.
type BillingHandler struct {
	Billing billing.BillingService
}

// NewBillingHandler constructs a BillingHandler.
func NewBillingHandler(svc billing.BillingService) *BillingHandler {
	return &BillingHandler{Billing: svc}
}

// CreateChargeHandler handles POST /api/charges (admin).
func (h *BillingHandler) CreateChargeHandler(c *gin.Context) {
	var req models.Charge
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	charge, err := h.Billing.CreateCharge(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, charge)
}

// MarkPaidHandler handles PUT /api/charges/:id/pay (admin).
func (h *BillingHandler) MarkPaidHandler(c *gin.Context) {
	if err := h.Billing.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, billing.ErrBadTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Charge marked paid"})
}

// VoidHandler handles PUT /api/charges/:id/void (admin).
func (h *BillingHandler) VoidHandler(c *gin.Context) {
	if err := h.Billing.Void(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, billing.ErrBadTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Charge voided"})
}

// ListMineHandler handles GET /api/charges (patient).
func (h *BillingHandler) ListMineHandler(c *gin.Context) {
	charges, err := h.Billing.ListForPatient(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, charges)
}

// ListAllHandler handles GET /api/charges/all (admin).
func (h *BillingHandler) ListAllHandler(c *gin.Context) {
	charges, err := h.Billing.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, charges)
}
