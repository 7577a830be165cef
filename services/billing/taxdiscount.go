package billing

import "stitchdesk/models"

// TaxAmount computes the percentage tax on the subtotal. A zero rate
// short-circuits to exactly 0 so a tax-free invoice never carries a
// floating-point artifact.
func TaxAmount(subtotal, taxPercent float64) float64 {
	if taxPercent == 0 {
		return 0
	}
	return Round2(subtotal * taxPercent / 100)
}

// DiscountAmount resolves a DiscountSpec against the subtotal: the value
// itself for an absolute discount, or value percent of the subtotal.
// Percentage values are intentionally not clamped to [0,100]; an oversized
// discount simply floors the total at zero in TotalAmount.
func DiscountAmount(subtotal float64, d models.DiscountSpec) float64 {
	if d.Kind == models.DiscountPercent {
		return Round2(subtotal * d.Value / 100)
	}
	return Round2(d.Value)
}

// TotalAmount folds tax and discount into the payable total. When the
// discount exceeds subtotal plus tax the total floors at 0 rather than
// going negative; a promotional give-away is accepted shop behavior, not
// an error.
func TotalAmount(subtotal, taxAmount, discountAmount float64) float64 {
	total := subtotal + taxAmount - discountAmount
	if total < 0 {
		total = 0
	}
	return Round2(total)
}
