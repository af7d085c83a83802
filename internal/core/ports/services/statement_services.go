package services

import (
	"context"
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/mandikhata/trade_ledger_app/internal/core/ledger"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

// StatementSvcFacade builds live statements and manages their persisted
// snapshots. A built statement is a pure recomputation over the party's
// transaction streams; a saved snapshot freezes those numbers until it is
// explicitly re-saved.
type StatementSvcFacade interface {
	// BuildPeriodStatement recomputes a customer period statement over
	// [from, to] without persisting anything.
	BuildPeriodStatement(ctx context.Context, partyID string, from, to time.Time, opts dto.PeriodStatementOptions) (*ledger.StatementResult, error)

	SavePeriodStatement(ctx context.Context, partyID string, req dto.SavePeriodStatementRequest, creatorUserID string) (*domain.PeriodStatement, error)
	UpdatePeriodStatement(ctx context.Context, statementID string, req dto.SavePeriodStatementRequest, updaterUserID string) (*domain.PeriodStatement, error)
	GetPeriodStatementByID(ctx context.Context, statementID string) (*domain.PeriodStatement, error)
	ListPeriodStatementsByParty(ctx context.Context, partyID string) ([]domain.PeriodStatement, error)
	DeletePeriodStatement(ctx context.Context, statementID string) error

	// BuildVendorStatement recomputes a vendor yield statement over
	// [from, to] without persisting anything.
	BuildVendorStatement(ctx context.Context, vendorID string, from, to time.Time, params ledger.VendorStatementParams) (*ledger.VendorStatementResult, error)

	SaveVendorStatement(ctx context.Context, vendorID string, req dto.SaveVendorStatementRequest, creatorUserID string) (*domain.VendorStatement, error)
	UpdateVendorStatement(ctx context.Context, statementID string, req dto.SaveVendorStatementRequest, updaterUserID string) (*domain.VendorStatement, error)
	GetVendorStatementByID(ctx context.Context, statementID string) (*domain.VendorStatement, error)
	ListVendorStatementsByVendor(ctx context.Context, vendorID string) ([]domain.VendorStatement, error)
	DeleteVendorStatement(ctx context.Context, statementID string) error
}
