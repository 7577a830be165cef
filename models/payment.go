package models

import "time"

// PaymentRequest is a projection derived from the current invoice state: a
// UPI deep link plus its QR rendering. It is recomputed on demand and never
// treated as a record of money actually collected; only the last rendered
// payload is cached for display.
type PaymentRequest struct {
	InvoiceID   string    `json:"invoiceId"`
	PayeeHandle string    `json:"payeeHandle"`
	PayeeName   string    `json:"payeeName"`
	Amount      float64   `json:"amount"` // Requested amount, typically the open balance.
	Note        string    `json:"note"`   // Transaction note, carries the invoice humanId.
	DeepLinkURI string    `json:"deepLinkUri"`
	QRPayload   string    `json:"qrPayload"` // Base64-encoded PNG of the deep link.
	Warning     string    `json:"warning,omitempty"`
	RenderedAt  time.Time `json:"renderedAt"`
}
