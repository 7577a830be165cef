package billing

import "math"

// Round2 rounds a currency amount to two decimal places. It is applied at
// every derived-field boundary (line amounts, subtotal, tax, discount,
// total, balance) rather than only at display time, so repeated
// recomputation cannot drift.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// checkNonNegative rejects a negative amount for the named field.
func checkNonNegative(field string, v float64) error {
	if v < 0 {
		return NewInvalidAmountError(field)
	}
	return nil
}
