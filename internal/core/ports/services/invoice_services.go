package services

import (
	"context"
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

// InvoiceSvcFacade defines invoice entry operations. Line item derivations
// (net weight, totals) and the settlement status happen at save time, on
// both create and edit.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// UpdateInvoice recomputes all derived fields and replaces the line
	// items wholesale.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.Invoice, error)

	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoicesByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
}
