package handlers

import (
	"net/http"

	"stitchdesk/models"
	"stitchdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateInvoiceHandler handles POST /invoices.
func (h *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var in models.InvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid invoice payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, warn, err := h.Service.CreateInvoice(c.Request.Context(), in)
	if err != nil {
		logger.Error("Failed to create invoice", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	invoiceResponse(c, http.StatusCreated, inv, warn)
}

// GetInvoiceByIDHandler handles GET /invoices/:id.
func (h *InvoiceHandler) GetInvoiceByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	inv, err := h.Service.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Invoice not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ListInvoicesHandler handles GET /invoices, optionally filtered by
// ?customerId=.
func (h *InvoiceHandler) ListInvoicesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var (
		invoices []models.Invoice
		err      error
	)
	if customerID := c.Query("customerId"); customerID != "" {
		invoices, err = h.Service.GetInvoicesByCustomer(c.Request.Context(), customerID)
	} else {
		invoices, err = h.Service.GetAllInvoices(c.Request.Context())
	}
	if err != nil {
		logger.Error("Failed to list invoices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// UpdateInvoiceHandler handles PUT /invoices/:id. The full editable field
// set is replaced and all derived fields are recomputed.
func (h *InvoiceHandler) UpdateInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var in models.InvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid invoice payload", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, warn, err := h.Service.UpdateInvoice(c.Request.Context(), id, in)
	if err != nil {
		logger.Error("Failed to update invoice", zap.String("id", id), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	invoiceResponse(c, http.StatusOK, inv, warn)
}

// RecordPaymentHandler handles POST /invoices/:id/payments. It adds a
// collected amount to the invoice and returns the re-derived record; an
// overpayment comes back as a warning, not an error.
func (h *InvoiceHandler) RecordPaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid payment payload", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, warn, err := h.Service.RecordPayment(c.Request.Context(), id, req.Amount)
	if err != nil {
		logger.Error("Failed to record payment", zap.String("id", id), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	invoiceResponse(c, http.StatusOK, inv, warn)
}

// DeleteInvoiceHandler handles DELETE /invoices/:id.
func (h *InvoiceHandler) DeleteInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Service.DeleteInvoice(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete invoice", zap.String("id", id), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted"})
}
