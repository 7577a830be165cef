package billing

import (
	"fmt"

	"stitchdesk/models"
)

// Derivation holds everything the reducer computes from an invoice's
// editable fields: the rows with recomputed line amounts plus the full
// derived chain.
type Derivation struct {
	Items          []models.LineItem
	Subtotal       float64
	TaxAmount      float64
	DiscountAmount float64
	TotalAmount    float64
	BalanceAmount  float64
	Status         string
}

// Derive is the single recomputation entry point for an invoice. It
// validates the editable fields, then runs the whole chain — aggregation,
// tax and discount, settlement — in one pass. Callers must apply the
// result atomically; patching individual derived fields is how totals and
// balances drift apart.
func Derive(in models.InvoiceInput) (*Derivation, *OverpaymentWarning, error) {
	if err := validateInput(in); err != nil {
		return nil, nil, err
	}

	items, itemsTotal := ItemsTotal(in.Items)
	subtotal := Subtotal(itemsTotal, BreakdownTotal(in.Breakdown))
	tax := TaxAmount(subtotal, in.TaxPercent)
	discount := DiscountAmount(subtotal, in.Discount)
	total := TotalAmount(subtotal, tax, discount)
	balance, status, warn := Settle(total, in.PaidAmount)

	return &Derivation{
		Items:          items,
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		TotalAmount:    total,
		BalanceAmount:  balance,
		Status:         status,
	}, warn, nil
}

// validateInput rejects negative amounts before any arithmetic runs, so a
// bad field never corrupts previously valid derived state.
func validateInput(in models.InvoiceInput) error {
	for i, it := range in.Items {
		if it.Quantity < 0 {
			return NewInvalidAmountError(fmt.Sprintf("items[%d].quantity", i))
		}
		if err := checkNonNegative(fmt.Sprintf("items[%d].unitRate", i), it.UnitRate); err != nil {
			return err
		}
	}
	b := in.Breakdown
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"breakdown.fabric", b.Fabric},
		{"breakdown.stitching", b.Stitching},
		{"breakdown.accessories", b.Accessories},
		{"breakdown.customization", b.Customization},
		{"breakdown.other", b.Other},
	} {
		if err := checkNonNegative(f.name, f.value); err != nil {
			return err
		}
	}
	if err := checkNonNegative("taxPercent", in.TaxPercent); err != nil {
		return err
	}
	if err := checkNonNegative("discount.value", in.Discount.Value); err != nil {
		return err
	}
	if in.Discount.Kind != "" && in.Discount.Kind != models.DiscountAmount && in.Discount.Kind != models.DiscountPercent {
		return &InvalidAmountError{Field: "discount.kind", Message: "must be \"amount\" or \"percent\""}
	}
	return checkNonNegative("paidAmount", in.PaidAmount)
}
