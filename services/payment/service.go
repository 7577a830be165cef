package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stitchdesk/models"
	"stitchdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// cached payloads outlive any realistic edit session but do expire, so a
// deleted invoice's QR does not linger forever
const cacheTTL = 24 * time.Hour

// PaymentRequestService renders payment requests (deep link + QR) for
// invoices. The rendering is a pure projection of current invoice state;
// only the last successful render is cached, for fallback display when a
// later render fails.
type PaymentRequestService interface {
	GenerateForInvoice(ctx context.Context, inv *models.Invoice, amountOverride *float64) (*models.PaymentRequest, error)
}

// RenderCache stores the last successfully rendered payload per invoice.
type RenderCache interface {
	GetRender(ctx context.Context, invoiceID string) (string, error)
	SetRender(ctx context.Context, invoiceID string, payload string) error
}

// redisRenderCache is the production RenderCache backed by Redis.
type redisRenderCache struct {
	client *redis.Client
}

// NewRedisRenderCache returns a RenderCache backed by the given Redis client.
func NewRedisRenderCache(client *redis.Client) RenderCache {
	return &redisRenderCache{client: client}
}

func (c *redisRenderCache) GetRender(ctx context.Context, invoiceID string) (string, error) {
	return c.client.Get(ctx, cacheKey(invoiceID)).Result()
}

func (c *redisRenderCache) SetRender(ctx context.Context, invoiceID string, payload string) error {
	return c.client.Set(ctx, cacheKey(invoiceID), payload, cacheTTL).Err()
}

// DefaultPaymentRequestService is the production implementation.
type DefaultPaymentRequestService struct {
	Cache    RenderCache
	Currency string
}

// cachedRender is the stored form of the last successful render.
type cachedRender struct {
	URI       string  `json:"uri"`
	QRPayload string  `json:"qr"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note"`
}

// GenerateForInvoice builds the UPI deep link for the invoice's current
// amount owed (or an operator-chosen amount) and renders its QR code. On
// encoding failure the previously rendered payload is returned with a
// warning instead, so the operator keeps a scannable code; when the link
// itself still built, it survives the failure so the UI can show the raw
// link as a textual fallback.
func (s *DefaultPaymentRequestService) GenerateForInvoice(ctx context.Context, inv *models.Invoice, amountOverride *float64) (*models.PaymentRequest, error) {
	logger := utils.GetLogger()

	amount := inv.BalanceAmount
	if amountOverride != nil {
		amount = *amountOverride
	}
	if amount < 0 {
		amount = 0
	}
	note := inv.HumanID

	req := &models.PaymentRequest{
		InvoiceID:   inv.ID,
		PayeeHandle: inv.PayeeHandle,
		PayeeName:   inv.PayeeName,
		Amount:      amount,
		Note:        note,
		RenderedAt:  time.Now(),
	}

	uri, err := BuildDeepLink(inv.PayeeHandle, inv.PayeeName, amount, s.Currency, note)
	if err == nil {
		req.DeepLinkURI = uri
		req.QRPayload, err = RenderQR(uri)
	}
	if err != nil {
		logger.Warn("Payment request render failed, falling back to cached payload",
			zap.String("invoiceID", inv.ID), zap.Error(err))
		return s.fallback(ctx, req, err)
	}

	s.cache(ctx, inv.ID, cachedRender{URI: uri, QRPayload: req.QRPayload, Amount: amount, Note: note})
	return req, nil
}

// fallback recovers what it can after a failed render. The previous QR
// payload (if cached) is retained; a deep link that built before the QR
// encoder failed is kept so the UI can show it as text. Only when neither
// exists does the failure propagate as an error.
func (s *DefaultPaymentRequestService) fallback(ctx context.Context, req *models.PaymentRequest, cause error) (*models.PaymentRequest, error) {
	req.Warning = cause.Error()

	if prev, ok := s.lastRender(ctx, req.InvoiceID); ok {
		req.QRPayload = prev.QRPayload
		if req.DeepLinkURI == "" {
			req.DeepLinkURI = prev.URI
			req.Amount = prev.Amount
			req.Note = prev.Note
		}
		return req, nil
	}
	if req.DeepLinkURI != "" {
		return req, nil
	}
	return nil, cause
}

// lastRender fetches the cached previous render for the invoice, if any.
func (s *DefaultPaymentRequestService) lastRender(ctx context.Context, invoiceID string) (*cachedRender, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.GetRender(ctx, invoiceID)
	if err != nil {
		return nil, false
	}
	var prev cachedRender
	if err := json.Unmarshal([]byte(raw), &prev); err != nil {
		return nil, false
	}
	return &prev, true
}

func (s *DefaultPaymentRequestService) cache(ctx context.Context, invoiceID string, r cachedRender) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := s.Cache.SetRender(ctx, invoiceID, string(raw)); err != nil {
		utils.GetLogger().Warn("Failed to cache payment request payload",
			zap.String("invoiceID", invoiceID), zap.Error(err))
	}
}

func cacheKey(invoiceID string) string {
	return fmt.Sprintf("payreq:%s", invoiceID)
}
