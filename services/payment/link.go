package payment

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildDeepLink constructs the UPI payment URI. Parameter order is fixed —
// pa, pn, am, cu, tn — and the display name and note are percent-encoded;
// payment apps scanning the QR depend on exactly this shape. The amount is
// rendered as a plain two-decimal string with no currency symbol.
func BuildDeepLink(handle, name string, amount float64, currency, note string) (string, error) {
	if err := validateHandle(handle); err != nil {
		return "", err
	}
	if amount < 0 {
		return "", NewEncodingFailedError("requested amount must not be negative")
	}
	if currency == "" {
		currency = "INR"
	}
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.2f&cu=%s&tn=%s",
		handle,
		percentEscape(name),
		amount,
		currency,
		percentEscape(note),
	), nil
}

// percentEscape query-escapes free text with spaces as %20, not "+"; some
// payment apps render a literal "+" from form encoding.
func percentEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// validateHandle checks the payee handle is a plausible UPI identifier
// (user@psp). Anything the handle check misses is caught by the payment
// app at scan time.
func validateHandle(handle string) error {
	if handle == "" {
		return NewEncodingFailedError("payee handle is empty")
	}
	at := strings.Index(handle, "@")
	if at <= 0 || at == len(handle)-1 {
		return NewEncodingFailedError("payee handle must be of the form name@provider")
	}
	if strings.ContainsAny(handle, " &?=#") {
		return NewEncodingFailedError("payee handle contains invalid characters")
	}
	return nil
}
