package billing_test

import (
	"testing"

	"stitchdesk/models"
	"stitchdesk/services/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name        string
		total       float64
		paid        float64
		wantBalance float64
		wantStatus  string
		wantWarn    bool
	}{
		{name: "nothing paid", total: 500, paid: 0, wantBalance: 500, wantStatus: models.StatusUnpaid},
		{name: "partially paid", total: 500, paid: 250, wantBalance: 250, wantStatus: models.StatusPartial},
		{name: "exactly settled", total: 1080, paid: 1080, wantBalance: 0, wantStatus: models.StatusPaid},
		{name: "overpaid", total: 1080, paid: 1200, wantBalance: -120, wantStatus: models.StatusPaid, wantWarn: true},
		{name: "zero total", total: 0, paid: 0, wantBalance: 0, wantStatus: models.StatusPaid},
		{name: "one paisa short", total: 100, paid: 99.99, wantBalance: 0.01, wantStatus: models.StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, status, warn := billing.Settle(tt.total, tt.paid)
			assert.InDelta(t, tt.wantBalance, balance, 1e-9)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantWarn {
				require.NotNil(t, warn)
				assert.InDelta(t, tt.paid, warn.PaidAmount, 1e-9)
				assert.InDelta(t, tt.total, warn.TotalAmount, 1e-9)
			} else {
				assert.Nil(t, warn)
			}
		})
	}
}

// Increasing the paid amount over a fixed total walks the status from
// unpaid through partial to paid and never back.
func TestSettle_StatusMonotonic(t *testing.T) {
	const total = 750.0

	rank := map[string]int{
		models.StatusUnpaid:  0,
		models.StatusPartial: 1,
		models.StatusPaid:    2,
	}

	prev := -1
	for paid := 0.0; paid <= total+300; paid += 50 {
		_, status, _ := billing.Settle(total, paid)
		r, ok := rank[status]
		require.True(t, ok, "unexpected status %q", status)
		assert.GreaterOrEqual(t, r, prev, "status regressed at paid=%.2f", paid)
		prev = r
	}
}
