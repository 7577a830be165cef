package billing

import "fmt"

// Invoice identifiers are "BILL" plus a number starting at 1000, so the
// first invoice is BILL1000. Existing stored records depend on this exact
// format.
const (
	humanIDPrefix = "BILL"
	humanIDBase   = 1000
)

// FormatHumanID renders the shop-facing identifier for an allocated
// sequence number. Allocation itself happens in the persistence layer
// through an atomic counter; this function never computes the next number
// from a record count.
func FormatHumanID(sequence int64) string {
	return fmt.Sprintf("%s%d", humanIDPrefix, humanIDBase+sequence)
}
