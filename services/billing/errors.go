package billing

import "fmt"

// InvalidAmountError reports a negative quantity, rate, breakdown value,
// tax percent, discount value, or paid amount. The offending field is named
// so the UI can reject just that field.
type InvalidAmountError struct {
	Field   string
	Message string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalidAmount: %s: %s", e.Field, e.Message)
}

func NewInvalidAmountError(field string) error {
	return &InvalidAmountError{
		Field:   field,
		Message: "must not be negative",
	}
}

// OverpaymentWarning is a non-fatal condition raised when the paid amount
// exceeds the invoice total. The derivation still completes: the balance
// goes negative and the status is paid; callers surface this to the
// operator instead of treating it as an error.
type OverpaymentWarning struct {
	PaidAmount  float64
	TotalAmount float64
}

func (w *OverpaymentWarning) Error() string {
	return fmt.Sprintf("overpayment: paid %.2f exceeds total %.2f", w.PaidAmount, w.TotalAmount)
}
