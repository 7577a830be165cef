package payment_test

import (
	"context"
	"errors"
	"testing"

	"stitchdesk/models"
	"stitchdesk/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateForInvoice(t *testing.T) {
	svc := &payment.DefaultPaymentRequestService{Currency: "INR"}

	inv := &models.Invoice{
		ID:            "inv-1",
		HumanID:       "BILL1007",
		PayeeHandle:   "shop@upi",
		PayeeName:     "Meera Tailors",
		TotalAmount:   1080,
		BalanceAmount: 830,
	}

	pr, err := svc.GenerateForInvoice(context.Background(), inv, nil)
	require.NoError(t, err)
	assert.Equal(t, "inv-1", pr.InvoiceID)
	assert.InDelta(t, 830, pr.Amount, 1e-9)
	assert.Equal(t, "BILL1007", pr.Note)
	assert.Equal(t, "upi://pay?pa=shop@upi&pn=Meera%20Tailors&am=830.00&cu=INR&tn=BILL1007", pr.DeepLinkURI)
	assert.NotEmpty(t, pr.QRPayload)
	assert.Empty(t, pr.Warning)
}

func TestGenerateForInvoice_OperatorOverridesAmount(t *testing.T) {
	svc := &payment.DefaultPaymentRequestService{Currency: "INR"}

	inv := &models.Invoice{
		ID:            "inv-2",
		HumanID:       "BILL1010",
		PayeeHandle:   "shop@upi",
		PayeeName:     "Meera Tailors",
		BalanceAmount: 900,
	}

	partial := 300.0
	pr, err := svc.GenerateForInvoice(context.Background(), inv, &partial)
	require.NoError(t, err)
	assert.InDelta(t, 300, pr.Amount, 1e-9)
	assert.Contains(t, pr.DeepLinkURI, "am=300.00")
}

func TestGenerateForInvoice_NegativeBalanceRequestsZero(t *testing.T) {
	// An overpaid invoice has a negative balance; the payment request asks
	// for nothing rather than a negative amount.
	svc := &payment.DefaultPaymentRequestService{Currency: "INR"}

	inv := &models.Invoice{
		ID:            "inv-3",
		HumanID:       "BILL1011",
		PayeeHandle:   "shop@upi",
		PayeeName:     "Meera Tailors",
		BalanceAmount: -120,
	}

	pr, err := svc.GenerateForInvoice(context.Background(), inv, nil)
	require.NoError(t, err)
	assert.Contains(t, pr.DeepLinkURI, "am=0.00")
}

func TestGenerateForInvoice_BadHandleWithoutCachedRender(t *testing.T) {
	svc := &payment.DefaultPaymentRequestService{Currency: "INR"}

	inv := &models.Invoice{
		ID:            "inv-4",
		HumanID:       "BILL1012",
		PayeeHandle:   "",
		PayeeName:     "Meera Tailors",
		BalanceAmount: 500,
	}

	_, err := svc.GenerateForInvoice(context.Background(), inv, nil)
	require.Error(t, err)
	var encErr *payment.EncodingFailedError
	assert.ErrorAs(t, err, &encErr)
}

// fakeRenderCache is an in-memory RenderCache for service tests.
type fakeRenderCache struct {
	renders map[string]string
}

func newFakeRenderCache() *fakeRenderCache {
	return &fakeRenderCache{renders: make(map[string]string)}
}

func (c *fakeRenderCache) GetRender(_ context.Context, invoiceID string) (string, error) {
	raw, ok := c.renders[invoiceID]
	if !ok {
		return "", errors.New("cache miss")
	}
	return raw, nil
}

func (c *fakeRenderCache) SetRender(_ context.Context, invoiceID, payload string) error {
	c.renders[invoiceID] = payload
	return nil
}

// oversizedName exceeds what any QR version can hold, so the deep link
// builds but the encoder rejects it.
func oversizedName() string {
	b := make([]byte, 8000)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}

// A failed render must hand back the previously rendered payload, not a
// blank code.
func TestGenerateForInvoice_FailureRetainsPreviousPayload(t *testing.T) {
	cache := newFakeRenderCache()
	svc := &payment.DefaultPaymentRequestService{Cache: cache, Currency: "INR"}

	inv := &models.Invoice{
		ID:            "inv-5",
		HumanID:       "BILL1013",
		PayeeHandle:   "shop@upi",
		PayeeName:     "Meera Tailors",
		BalanceAmount: 450,
	}

	first, err := svc.GenerateForInvoice(context.Background(), inv, nil)
	require.NoError(t, err)
	require.NotEmpty(t, first.QRPayload)

	// An oversized payee name builds a valid URI that the QR encoder
	// rejects.
	inv.PayeeName = oversizedName()

	second, err := svc.GenerateForInvoice(context.Background(), inv, nil)
	require.NoError(t, err)
	assert.Equal(t, first.QRPayload, second.QRPayload)
	assert.NotEmpty(t, second.Warning)
	assert.NotEmpty(t, second.DeepLinkURI)
}

// When the URI itself cannot be built, the cached previous render is
// served whole: link, payload, amount and note.
func TestGenerateForInvoice_BadHandleWithCachedRender(t *testing.T) {
	cache := newFakeRenderCache()
	svc := &payment.DefaultPaymentRequestService{Cache: cache, Currency: "INR"}

	inv := &models.Invoice{
		ID:            "inv-6",
		HumanID:       "BILL1014",
		PayeeHandle:   "shop@upi",
		PayeeName:     "Meera Tailors",
		BalanceAmount: 275,
	}

	first, err := svc.GenerateForInvoice(context.Background(), inv, nil)
	require.NoError(t, err)

	inv.PayeeHandle = "not-a-handle"

	second, err := svc.GenerateForInvoice(context.Background(), inv, nil)
	require.NoError(t, err)
	assert.Equal(t, first.DeepLinkURI, second.DeepLinkURI)
	assert.Equal(t, first.QRPayload, second.QRPayload)
	assert.InDelta(t, first.Amount, second.Amount, 1e-9)
	assert.Equal(t, first.Note, second.Note)
	assert.NotEmpty(t, second.Warning)
}

// With no previous render, a QR failure still surfaces the freshly built
// deep link so the UI can show it as text instead of an image.
func TestGenerateForInvoice_QRFailureKeepsDeepLink(t *testing.T) {
	svc := &payment.DefaultPaymentRequestService{Currency: "INR"}

	inv := &models.Invoice{
		ID:            "inv-7",
		HumanID:       "BILL1015",
		PayeeHandle:   "shop@upi",
		PayeeName:     oversizedName(),
		BalanceAmount: 600,
	}

	pr, err := svc.GenerateForInvoice(context.Background(), inv, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, pr.DeepLinkURI)
	assert.Empty(t, pr.QRPayload)
	assert.NotEmpty(t, pr.Warning)
}
