package repositories

import (
	"context"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
)

// PeriodStatementRepository persists customer period statement snapshots.
// Saves and updates are single-row atomic writes; a snapshot is never
// refreshed implicitly.
type PeriodStatementRepository interface {
	SavePeriodStatement(ctx context.Context, statement domain.PeriodStatement) error
	UpdatePeriodStatement(ctx context.Context, statement domain.PeriodStatement) error
	FindPeriodStatementByID(ctx context.Context, statementID string) (*domain.PeriodStatement, error)
	ListPeriodStatementsByParty(ctx context.Context, partyID string) ([]domain.PeriodStatement, error)
	DeletePeriodStatement(ctx context.Context, statementID string) error
}

// VendorStatementRepository persists vendor yield statement snapshots with
// the same freeze semantics.
type VendorStatementRepository interface {
	SaveVendorStatement(ctx context.Context, statement domain.VendorStatement) error
	UpdateVendorStatement(ctx context.Context, statement domain.VendorStatement) error
	FindVendorStatementByID(ctx context.Context, statementID string) (*domain.VendorStatement, error)
	ListVendorStatementsByVendor(ctx context.Context, vendorID string) ([]domain.VendorStatement, error)
	DeleteVendorStatement(ctx context.Context, statementID string) error
}

// StatementRepositoryFacade combines both snapshot repositories
type StatementRepositoryFacade interface {
	PeriodStatementRepository
	VendorStatementRepository
}
