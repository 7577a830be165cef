package billing

import "stitchdesk/models"

// Settle compares the amount collected against the amount owed. The balance
// may go negative: overpayment is surfaced through the returned warning and
// a paid status, never silently clamped away.
func Settle(totalAmount, paidAmount float64) (balance float64, status string, warn *OverpaymentWarning) {
	balance = Round2(totalAmount - paidAmount)

	switch {
	case paidAmount == 0 && totalAmount > 0:
		status = models.StatusUnpaid
	case paidAmount >= totalAmount:
		status = models.StatusPaid
	default:
		status = models.StatusPartial
	}

	if paidAmount > totalAmount {
		warn = &OverpaymentWarning{PaidAmount: paidAmount, TotalAmount: totalAmount}
	}
	return balance, status, warn
}
