package billing

import "stitchdesk/models"

// ItemsTotal recomputes every line amount as quantity × unit rate (rounded
// per line) and returns the rows with their sum. The stored lineAmount is
// never trusted; it is derived here on every pass.
func ItemsTotal(items []models.LineItem) ([]models.LineItem, float64) {
	out := make([]models.LineItem, len(items))
	total := 0.0
	for i, it := range items {
		it.LineAmount = Round2(float64(it.Quantity) * it.UnitRate)
		out[i] = it
		total += it.LineAmount
	}
	return out, Round2(total)
}

// BreakdownTotal sums the five fixed cost categories.
func BreakdownTotal(b models.CostBreakdown) float64 {
	return Round2(b.Fabric + b.Stitching + b.Accessories + b.Customization + b.Other)
}

// Subtotal combines the line-item total and the cost breakdown. An empty
// item sequence is valid; an invoice may be pure-breakdown.
func Subtotal(itemsTotal, breakdownTotal float64) float64 {
	return Round2(itemsTotal + breakdownTotal)
}
