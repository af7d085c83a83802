package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
)

// reportingService aggregates the dashboard figures. Receivable and payable
// totals run the balance engine across every active party, so the dashboard
// can never disagree with the individual ledgers.
type reportingService struct {
	BaseService
	partySvc    portssvc.PartySvcFacade
	invoiceRepo portsrepo.InvoiceReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(partySvc portssvc.PartySvcFacade, invoiceRepo portsrepo.InvoiceReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		partySvc:    partySvc,
		invoiceRepo: invoiceRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	customers, err := s.partySvc.ListPartiesWithBalances(ctx, domain.Customer)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate customer balances: %w", err)
	}
	vendors, err := s.partySvc.ListPartiesWithBalances(ctx, domain.Vendor)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate vendor balances: %w", err)
	}

	// Receivable counts only what customers still owe; credit balances
	// (overpayments) do not offset other customers' dues.
	totalReceivable := decimal.Zero
	for _, c := range customers {
		if c.Balance.IsPositive() {
			totalReceivable = totalReceivable.Add(c.Balance)
		}
	}
	totalPayable := decimal.Zero
	for _, v := range vendors {
		totalPayable = totalPayable.Add(v.Balance)
	}

	pending, err := s.invoiceRepo.CountInvoicesByStatus(ctx, domain.StatusPending, domain.StatusPartial)
	if err != nil {
		return nil, fmt.Errorf("failed to count unsettled invoices: %w", err)
	}

	return &domain.DashboardSummary{
		TotalReceivable: totalReceivable,
		TotalPayable:    totalPayable,
		CustomerCount:   len(customers),
		VendorCount:     len(vendors),
		PendingInvoices: pending,
	}, nil
}
