package payment

import "fmt"

// EncodingFailedError reports that the payment deep link could not be built
// or rendered into a QR code. Callers fall back to the previously rendered
// payload (if any) so the operator never sees a broken code.
type EncodingFailedError struct {
	Reason string
}

func (e *EncodingFailedError) Error() string {
	return fmt.Sprintf("encodingFailed: %s", e.Reason)
}

func NewEncodingFailedError(reason string) error {
	return &EncodingFailedError{Reason: reason}
}
