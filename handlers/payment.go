package handlers

import (
	"net/http"

	"stitchdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentRequestHandler handles POST /invoices/:id/payment-request. It
// renders a UPI deep link and QR code for the invoice's open balance, or
// for an operator-chosen amount (partial payment requests). When rendering
// fails but a previous payload exists, that payload is returned with a
// warning so the operator keeps a scannable code.
func (h *InvoiceHandler) PaymentRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Amount *float64 `json:"amount"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid payment request payload", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	inv, err := h.Service.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Invoice not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	pr, err := h.PaymentRequests.GenerateForInvoice(c.Request.Context(), inv, req.Amount)
	if err != nil {
		logger.Error("Failed to generate payment request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pr)
}
