package payment_test

import (
	"encoding/base64"
	"testing"

	"stitchdesk/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeepLink(t *testing.T) {
	tests := []struct {
		name     string
		handle   string
		payee    string
		amount   float64
		currency string
		note     string
		want     string
		wantErr  bool
	}{
		{
			name:     "basic link",
			handle:   "shop@upi",
			payee:    "Meera Tailors",
			amount:   1080,
			currency: "INR",
			note:     "BILL1007",
			want:     "upi://pay?pa=shop@upi&pn=Meera%20Tailors&am=1080.00&cu=INR&tn=BILL1007",
		},
		{
			name:     "amount keeps two decimals",
			handle:   "shop@upi",
			payee:    "Shop",
			amount:   99.5,
			currency: "INR",
			note:     "BILL1000",
			want:     "upi://pay?pa=shop@upi&pn=Shop&am=99.50&cu=INR&tn=BILL1000",
		},
		{
			name:     "note is percent encoded",
			handle:   "shop@upi",
			payee:    "R&S Boutique",
			amount:   250,
			currency: "INR",
			note:     "BILL1012 blouse & saree",
			want:     "upi://pay?pa=shop@upi&pn=R%26S%20Boutique&am=250.00&cu=INR&tn=BILL1012%20blouse%20%26%20saree",
		},
		{
			name:     "empty currency defaults to INR",
			handle:   "shop@upi",
			payee:    "Shop",
			amount:   10,
			currency: "",
			note:     "BILL1001",
			want:     "upi://pay?pa=shop@upi&pn=Shop&am=10.00&cu=INR&tn=BILL1001",
		},
		{name: "empty handle", handle: "", payee: "Shop", amount: 10, wantErr: true},
		{name: "handle without provider", handle: "shop@", payee: "Shop", amount: 10, wantErr: true},
		{name: "handle without user", handle: "@upi", payee: "Shop", amount: 10, wantErr: true},
		{name: "handle with query characters", handle: "shop@upi&x=1", payee: "Shop", amount: 10, wantErr: true},
		{name: "negative amount", handle: "shop@upi", payee: "Shop", amount: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := payment.BuildDeepLink(tt.handle, tt.payee, tt.amount, tt.currency, tt.note)
			if tt.wantErr {
				require.Error(t, err)
				var encErr *payment.EncodingFailedError
				assert.ErrorAs(t, err, &encErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Same inputs must yield the same URI and the same QR payload on every
// call; the encoding embeds no timestamps or randomness.
func TestDeepLinkAndQRDeterministic(t *testing.T) {
	uri1, err := payment.BuildDeepLink("shop@upi", "Meera Tailors", 433.25, "INR", "BILL1019")
	require.NoError(t, err)
	uri2, err := payment.BuildDeepLink("shop@upi", "Meera Tailors", 433.25, "INR", "BILL1019")
	require.NoError(t, err)
	assert.Equal(t, uri1, uri2)

	qr1, err := payment.RenderQR(uri1)
	require.NoError(t, err)
	qr2, err := payment.RenderQR(uri2)
	require.NoError(t, err)
	assert.Equal(t, qr1, qr2)
}

func TestRenderQR_ProducesPNG(t *testing.T) {
	uri, err := payment.BuildDeepLink("shop@upi", "Shop", 100, "INR", "BILL1000")
	require.NoError(t, err)

	payload, err := payment.RenderQR(uri)
	require.NoError(t, err)

	png, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, png[:8])
}

func TestRenderQR_RejectsOversizedPayload(t *testing.T) {
	// QR version 40 tops out well under 8KB of text.
	big := make([]byte, 8192)
	for i := range big {
		big[i] = 'a'
	}
	_, err := payment.RenderQR(string(big))
	require.Error(t, err)
	var encErr *payment.EncodingFailedError
	assert.ErrorAs(t, err, &encErr)
}
