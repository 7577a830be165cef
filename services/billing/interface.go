package billing

import (
	"context"

	invoiceRepo "stitchdesk/database/repository/invoice"
	"stitchdesk/models"
)

// InvoiceService is the write and read surface for invoices. Every write
// path funnels the editable fields through Derive so the stored record
// always carries a consistent derived chain.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, in models.InvoiceInput) (*models.Invoice, *OverpaymentWarning, error)
	UpdateInvoice(ctx context.Context, id string, in models.InvoiceInput) (*models.Invoice, *OverpaymentWarning, error)
	RecordPayment(ctx context.Context, id string, amount float64) (*models.Invoice, *OverpaymentWarning, error)
	GetInvoiceByID(ctx context.Context, id string) (*models.Invoice, error)
	GetInvoicesByCustomer(ctx context.Context, customerID string) ([]models.Invoice, error)
	GetAllInvoices(ctx context.Context) ([]models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo invoiceRepo.InvoiceRepository

	// Fallback payee details applied when an invoice does not carry its own.
	DefaultPayeeHandle string
	DefaultPayeeName   string
}
