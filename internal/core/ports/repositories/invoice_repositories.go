package repositories

import (
	"context"
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its nested line items.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByParty retrieves a party's invoices, with nested line
	// items, optionally bounded to from <= invoice_date <= to (inclusive).
	// Nil bounds mean unbounded on that side.
	ListInvoicesByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Invoice, error)

	// CountInvoicesByStatus counts invoices in the given settlement states.
	CountInvoicesByStatus(ctx context.Context, statuses ...domain.InvoiceStatus) (int, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists the invoice header and all its line items
	// atomically.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice replaces the invoice header and recreates its line
	// items wholesale within one transaction. There is no partial item
	// patching.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
