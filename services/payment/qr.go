package payment

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// RenderQR encodes the deep link into a QR PNG and returns it
// base64-encoded for embedding in a JSON response. The encoder is
// deterministic: the same URI always yields the same payload.
func RenderQR(uri string) (string, error) {
	qr, err := qrcode.New(uri, qrcode.Medium)
	if err != nil {
		return "", NewEncodingFailedError(fmt.Sprintf("failed to create QR code: %v", err))
	}
	png, err := qr.PNG(qrImageSize)
	if err != nil {
		return "", NewEncodingFailedError(fmt.Sprintf("failed to render QR PNG: %v", err))
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
