package services

import (
	"context"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
)

// ReportingSvcFacade defines operations for the dashboard stats surface.
type ReportingSvcFacade interface {
	// DashboardSummary recomputes receivable/payable totals across all
	// active parties.
	DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
