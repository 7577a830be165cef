package models

import "time"

// Payment status values derived by the settlement tracker.
const (
	StatusUnpaid  = "unpaid"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

// Discount kinds accepted on an invoice.
const (
	DiscountAmount  = "amount"  // discount.value is an absolute amount
	DiscountPercent = "percent" // discount.value is a percentage of the subtotal
)

// LineItem is one billable row on an invoice. LineAmount is always
// recomputed from Quantity and UnitRate; it is never accepted from a client.
type LineItem struct {
	ID          string  `bson:"id" json:"id"`
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitRate    float64 `bson:"unitRate" json:"unitRate"`
	LineAmount  float64 `bson:"lineAmount" json:"lineAmount"`
}

// CostBreakdown holds the fixed non-line-item charge categories. All five
// categories are always present in a stored invoice, zero-filled if unused;
// ad-hoc charges go into Other.
type CostBreakdown struct {
	Fabric        float64 `bson:"fabric" json:"fabric"`
	Stitching     float64 `bson:"stitching" json:"stitching"`
	Accessories   float64 `bson:"accessories" json:"accessories"`
	Customization float64 `bson:"customization" json:"customization"`
	Other         float64 `bson:"other" json:"other"`
}

// DiscountSpec describes the invoice discount: an absolute amount or a
// percentage of the subtotal.
type DiscountSpec struct {
	Value float64 `bson:"value" json:"value"`
	Kind  string  `bson:"kind" json:"kind"` // "amount" or "percent"
}

// Invoice is the billable record for one customer transaction.
// The derived fields (Subtotal through Status) are computed by the billing
// service on every write; clients never set them directly.
type Invoice struct {
	ID          string        `bson:"id" json:"id"`                   // Storage key (UUID).
	HumanID     string        `bson:"humanId" json:"humanId"`         // Shop-facing identifier, e.g. "BILL1007".
	CustomerID  string        `bson:"customerId" json:"customerId"`   // Reference to the customer record.
	Items       []LineItem    `bson:"items" json:"items"`             // Ordered billable rows.
	Breakdown   CostBreakdown `bson:"breakdown" json:"breakdown"`     // Fixed-category charges.
	TaxPercent  float64       `bson:"taxPercent" json:"taxPercent"`   // Percentage tax on the subtotal.
	Discount    DiscountSpec  `bson:"discount" json:"discount"`       // Absolute or percentage discount.
	PaidAmount  float64       `bson:"paidAmount" json:"paidAmount"`   // Cumulative amount collected.
	PayeeHandle string        `bson:"payeeHandle" json:"payeeHandle"` // UPI handle payments are requested to.
	PayeeName   string        `bson:"payeeName" json:"payeeName"`     // Display name shown by payment apps.

	// Derived billing fields.
	Subtotal       float64 `bson:"subtotal" json:"subtotal"`
	TaxAmount      float64 `bson:"taxAmount" json:"taxAmount"`
	DiscountAmount float64 `bson:"discountAmount" json:"discountAmount"`
	TotalAmount    float64 `bson:"totalAmount" json:"totalAmount"`
	BalanceAmount  float64 `bson:"balanceAmount" json:"balanceAmount"` // Negative on overpayment.
	Status         string  `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InvoiceInput carries the operator-editable fields of an invoice. Every
// write path runs it through the billing service to produce the derived
// fields; it is the only shape handlers accept for create and update.
type InvoiceInput struct {
	CustomerID  string        `json:"customerId" binding:"required"`
	Items       []LineItem    `json:"items"`
	Breakdown   CostBreakdown `json:"breakdown"`
	TaxPercent  float64       `json:"taxPercent"`
	Discount    DiscountSpec  `json:"discount"`
	PaidAmount  float64       `json:"paidAmount"`
	PayeeHandle string        `json:"payeeHandle"`
	PayeeName   string        `json:"payeeName"`
}
