package handlers

import (
	"errors"
	"net/http"
	"strings"

	"stitchdesk/services/billing"
	"stitchdesk/services/payment"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler exposes invoice billing endpoints.
type InvoiceHandler struct {
	Service         billing.InvoiceService
	PaymentRequests payment.PaymentRequestService
}

// NewInvoiceHandler returns a handler backed by the given services.
func NewInvoiceHandler(svc billing.InvoiceService, pr payment.PaymentRequestService) *InvoiceHandler {
	return &InvoiceHandler{
		Service:         svc,
		PaymentRequests: pr,
	}
}

// invoiceResponse wraps an invoice with an optional non-fatal warning
// (overpayment) so the UI can surface it without treating the write as
// failed.
func invoiceResponse(c *gin.Context, status int, inv any, warn *billing.OverpaymentWarning) {
	body := gin.H{"invoice": inv}
	if warn != nil {
		body["warning"] = warn.Error()
	}
	c.JSON(status, body)
}

// statusForError maps billing errors onto HTTP status codes: invalid
// amounts are client errors, missing records are 404s, the rest are 500s.
func statusForError(err error) int {
	var invalid *billing.InvalidAmountError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	if strings.Contains(err.Error(), "not found") {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
