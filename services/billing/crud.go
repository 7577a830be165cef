package billing

import (
	"context"
	"fmt"
	"time"

	"stitchdesk/models"
	"stitchdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInvoice derives the billing fields for a new invoice, allocates its
// shop-facing identifier from the repository's sequence counter, and
// persists the record.
func (s *DefaultInvoiceService) CreateInvoice(ctx context.Context, in models.InvoiceInput) (*models.Invoice, *OverpaymentWarning, error) {
	logger := utils.GetLogger()

	d, warn, err := Derive(in)
	if err != nil {
		return nil, nil, err
	}

	seq, err := s.Repo.NextSequence(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to allocate invoice sequence: %w", err)
	}

	now := time.Now()
	inv := &models.Invoice{
		ID:          uuid.New().String(),
		HumanID:     FormatHumanID(seq),
		CustomerID:  in.CustomerID,
		Items:       d.Items,
		Breakdown:   in.Breakdown,
		TaxPercent:  in.TaxPercent,
		Discount:    normalizeDiscount(in.Discount),
		PaidAmount:  Round2(in.PaidAmount),
		PayeeHandle: in.PayeeHandle,
		PayeeName:   in.PayeeName,

		Subtotal:       d.Subtotal,
		TaxAmount:      d.TaxAmount,
		DiscountAmount: d.DiscountAmount,
		TotalAmount:    d.TotalAmount,
		BalanceAmount:  d.BalanceAmount,
		Status:         d.Status,

		CreatedAt: now,
		UpdatedAt: now,
	}
	s.applyPayeeDefaults(inv)

	if err := s.Repo.Create(ctx, *inv); err != nil {
		logger.Error("Failed to create invoice", zap.String("humanId", inv.HumanID), zap.Error(err))
		return nil, nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	logger.Info("Invoice created",
		zap.String("invoiceID", inv.ID),
		zap.String("humanId", inv.HumanID),
		zap.Float64("totalAmount", inv.TotalAmount),
		zap.String("status", inv.Status))
	return inv, warn, nil
}

// UpdateInvoice replaces the editable fields of an existing invoice and
// recomputes the full derived chain in one pass. Identity fields (id,
// humanId, createdAt) are preserved.
func (s *DefaultInvoiceService) UpdateInvoice(ctx context.Context, id string, in models.InvoiceInput) (*models.Invoice, *OverpaymentWarning, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("invoice not found: %w", err)
	}

	d, warn, err := Derive(in)
	if err != nil {
		return nil, nil, err
	}

	inv := *existing
	inv.CustomerID = in.CustomerID
	inv.Items = d.Items
	inv.Breakdown = in.Breakdown
	inv.TaxPercent = in.TaxPercent
	inv.Discount = normalizeDiscount(in.Discount)
	inv.PaidAmount = Round2(in.PaidAmount)
	if in.PayeeHandle != "" {
		inv.PayeeHandle = in.PayeeHandle
	}
	if in.PayeeName != "" {
		inv.PayeeName = in.PayeeName
	}
	inv.Subtotal = d.Subtotal
	inv.TaxAmount = d.TaxAmount
	inv.DiscountAmount = d.DiscountAmount
	inv.TotalAmount = d.TotalAmount
	inv.BalanceAmount = d.BalanceAmount
	inv.Status = d.Status
	inv.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, inv); err != nil {
		logger.Error("Failed to update invoice", zap.String("invoiceID", id), zap.Error(err))
		return nil, nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return &inv, warn, nil
}

// RecordPayment adds a collected amount to the invoice's cumulative paid
// amount and re-derives balance and status. Overpayment is reported through
// the warning, not rejected.
func (s *DefaultInvoiceService) RecordPayment(ctx context.Context, id string, amount float64) (*models.Invoice, *OverpaymentWarning, error) {
	if amount < 0 {
		return nil, nil, NewInvalidAmountError("amount")
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("invoice not found: %w", err)
	}

	in := inputFromInvoice(existing)
	in.PaidAmount = Round2(existing.PaidAmount + amount)
	return s.UpdateInvoice(ctx, id, in)
}

func (s *DefaultInvoiceService) GetInvoiceByID(ctx context.Context, id string) (*models.Invoice, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultInvoiceService) GetInvoicesByCustomer(ctx context.Context, customerID string) ([]models.Invoice, error) {
	return s.Repo.GetByCustomerID(ctx, customerID)
}

func (s *DefaultInvoiceService) GetAllInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultInvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	logger := utils.GetLogger()
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		logger.Error("Failed to delete invoice", zap.String("invoiceID", id), zap.Error(err))
		return err
	}
	logger.Info("Invoice deleted", zap.String("invoiceID", id))
	return nil
}

// applyPayeeDefaults fills in the shop's configured payee details when the
// invoice does not carry its own.
func (s *DefaultInvoiceService) applyPayeeDefaults(inv *models.Invoice) {
	if inv.PayeeHandle == "" {
		inv.PayeeHandle = s.DefaultPayeeHandle
	}
	if inv.PayeeName == "" {
		inv.PayeeName = s.DefaultPayeeName
	}
}

// normalizeDiscount pins an unset discount kind to the absolute-amount
// default so stored records are never ambiguous.
func normalizeDiscount(d models.DiscountSpec) models.DiscountSpec {
	if d.Kind == "" {
		d.Kind = models.DiscountAmount
	}
	return d
}

// inputFromInvoice rebuilds the editable field set from a stored record,
// used when a single field change (such as a payment) must still re-derive
// the whole chain.
func inputFromInvoice(inv *models.Invoice) models.InvoiceInput {
	return models.InvoiceInput{
		CustomerID:  inv.CustomerID,
		Items:       inv.Items,
		Breakdown:   inv.Breakdown,
		TaxPercent:  inv.TaxPercent,
		Discount:    inv.Discount,
		PaidAmount:  inv.PaidAmount,
		PayeeHandle: inv.PayeeHandle,
		PayeeName:   inv.PayeeName,
	}
}
