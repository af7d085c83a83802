package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mandikhata/trade_ledger_app/internal/apperrors"
	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/mandikhata/trade_ledger_app/internal/core/ledger"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

const statementDateLayout = "2006-01-02"

// statementService builds live statements and manages their persisted
// snapshots. Building is a pure recomputation over the party's transaction
// streams; a saved snapshot freezes the numbers of that moment and is only
// ever refreshed by an explicit re-save.
type statementService struct {
	BaseService
	statementRepo  portsrepo.StatementRepositoryFacade
	partyRepo      portsrepo.PartyReader
	invoiceRepo    portsrepo.InvoiceReader
	paymentRepo    portsrepo.PaymentReader
	adjustmentRepo portsrepo.AdjustmentReader
	purchaseRepo   portsrepo.PurchaseReader
}

// NewStatementService creates a new StatementService.
func NewStatementService(
	statementRepo portsrepo.StatementRepositoryFacade,
	partyRepo portsrepo.PartyReader,
	invoiceRepo portsrepo.InvoiceReader,
	paymentRepo portsrepo.PaymentReader,
	adjustmentRepo portsrepo.AdjustmentReader,
	purchaseRepo portsrepo.PurchaseReader,
) portssvc.StatementSvcFacade {
	return &statementService{
		statementRepo:  statementRepo,
		partyRepo:      partyRepo,
		invoiceRepo:    invoiceRepo,
		paymentRepo:    paymentRepo,
		adjustmentRepo: adjustmentRepo,
		purchaseRepo:   purchaseRepo,
	}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

func (s *statementService) BuildPeriodStatement(ctx context.Context, partyID string, from, to time.Time, opts dto.PeriodStatementOptions) (*ledger.StatementResult, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve statement party %s: %w", partyID, err)
	}

	// The prior balance needs the full history, so the streams are fetched
	// unbounded and the engine applies the range.
	invoices, err := s.invoiceRepo.ListInvoicesByParty(ctx, partyID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for statement: %w", err)
	}
	payments, err := s.paymentRepo.ListPaymentsByParty(ctx, partyID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for statement: %w", err)
	}
	adjustments, err := s.adjustmentRepo.ListAdjustmentsByParty(ctx, partyID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments for statement: %w", err)
	}

	result, err := ledger.BuildPeriodStatement(*party, invoices, payments, adjustments, from, to, opts.Discount, opts.OtherCharges, opts.IncludePayments)
	if err != nil {
		return nil, fmt.Errorf("failed to build period statement for party %s: %w", partyID, err)
	}
	return result, nil
}

func (s *statementService) SavePeriodStatement(ctx context.Context, partyID string, req dto.SavePeriodStatementRequest, creatorUserID string) (*domain.PeriodStatement, error) {
	from, to, err := parseStatementRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	result, err := s.BuildPeriodStatement(ctx, partyID, from, to, dto.PeriodStatementOptions{
		Discount:     req.Discount,
		OtherCharges: req.OtherCharges,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	statement := periodSnapshotFrom(partyID, result)
	statement.StatementID = uuid.NewString()
	statement.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.statementRepo.SavePeriodStatement(ctx, statement); err != nil {
		s.LogError(ctx, err, "failed to save period statement", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to save period statement: %w", err)
	}

	s.LogInfo(ctx, "period statement saved",
		slog.String("statement_id", statement.StatementID),
		slog.String("party_id", partyID),
		slog.String("closing_balance", statement.ClosingBalance.String()))
	return &statement, nil
}

func (s *statementService) UpdatePeriodStatement(ctx context.Context, statementID string, req dto.SavePeriodStatementRequest, updaterUserID string) (*domain.PeriodStatement, error) {
	existing, err := s.statementRepo.FindPeriodStatementByID(ctx, statementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period statement %s for update: %w", statementID, err)
	}

	from, to, err := parseStatementRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	// Re-save recomputes from the current streams; this is the only way a
	// snapshot's figures ever change.
	result, err := s.BuildPeriodStatement(ctx, existing.PartyID, from, to, dto.PeriodStatementOptions{
		Discount:     req.Discount,
		OtherCharges: req.OtherCharges,
	})
	if err != nil {
		return nil, err
	}

	statement := periodSnapshotFrom(existing.PartyID, result)
	statement.StatementID = existing.StatementID
	statement.AuditFields = domain.AuditFields{
		CreatedAt:     existing.CreatedAt,
		CreatedBy:     existing.CreatedBy,
		LastUpdatedAt: time.Now(),
		LastUpdatedBy: updaterUserID,
	}

	if err := s.statementRepo.UpdatePeriodStatement(ctx, statement); err != nil {
		s.LogError(ctx, err, "failed to update period statement", slog.String("statement_id", statementID))
		return nil, fmt.Errorf("failed to update period statement %s: %w", statementID, err)
	}
	return &statement, nil
}

func (s *statementService) GetPeriodStatementByID(ctx context.Context, statementID string) (*domain.PeriodStatement, error) {
	statement, err := s.statementRepo.FindPeriodStatementByID(ctx, statementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get period statement %s: %w", statementID, err)
	}
	return statement, nil
}

func (s *statementService) ListPeriodStatementsByParty(ctx context.Context, partyID string) ([]domain.PeriodStatement, error) {
	statements, err := s.statementRepo.ListPeriodStatementsByParty(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list period statements for party %s: %w", partyID, err)
	}
	if statements == nil {
		return []domain.PeriodStatement{}, nil
	}
	return statements, nil
}

func (s *statementService) DeletePeriodStatement(ctx context.Context, statementID string) error {
	if _, err := s.statementRepo.FindPeriodStatementByID(ctx, statementID); err != nil {
		return fmt.Errorf("failed to find period statement %s for deletion: %w", statementID, err)
	}
	if err := s.statementRepo.DeletePeriodStatement(ctx, statementID); err != nil {
		return fmt.Errorf("failed to delete period statement %s: %w", statementID, err)
	}
	s.LogInfo(ctx, "period statement deleted", slog.String("statement_id", statementID))
	return nil
}

func (s *statementService) BuildVendorStatement(ctx context.Context, vendorID string, from, to time.Time, params ledger.VendorStatementParams) (*ledger.VendorStatementResult, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve statement vendor %s: %w", vendorID, err)
	}
	if party.PartyType != domain.Vendor {
		return nil, fmt.Errorf("%w: party %s is not a vendor", apperrors.ErrValidation, vendorID)
	}

	// Purchase timestamps can carry a time of day; the query bounds must
	// cover the whole of both boundary days.
	lower := ledger.DateOf(from)
	upper := ledger.DateOf(to).AddDate(0, 0, 1).Add(-time.Nanosecond)
	purchases, err := s.purchaseRepo.ListPurchasesByVendor(ctx, vendorID, &lower, &upper)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases for vendor statement: %w", err)
	}

	result, err := ledger.BuildVendorStatement(purchases, from, to, params)
	if err != nil {
		return nil, fmt.Errorf("failed to build vendor statement for %s: %w", vendorID, err)
	}
	return result, nil
}

func (s *statementService) SaveVendorStatement(ctx context.Context, vendorID string, req dto.SaveVendorStatementRequest, creatorUserID string) (*domain.VendorStatement, error) {
	from, to, err := parseStatementRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	result, err := s.BuildVendorStatement(ctx, vendorID, from, to, vendorParamsFrom(req))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	statement := vendorSnapshotFrom(vendorID, req, result)
	statement.StatementID = uuid.NewString()
	statement.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.statementRepo.SaveVendorStatement(ctx, statement); err != nil {
		s.LogError(ctx, err, "failed to save vendor statement", slog.String("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to save vendor statement: %w", err)
	}

	s.LogInfo(ctx, "vendor statement saved",
		slog.String("statement_id", statement.StatementID),
		slog.String("vendor_id", vendorID),
		slog.String("final_total", statement.FinalTotal.String()))
	return &statement, nil
}

func (s *statementService) UpdateVendorStatement(ctx context.Context, statementID string, req dto.SaveVendorStatementRequest, updaterUserID string) (*domain.VendorStatement, error) {
	existing, err := s.statementRepo.FindVendorStatementByID(ctx, statementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor statement %s for update: %w", statementID, err)
	}

	from, to, err := parseStatementRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	result, err := s.BuildVendorStatement(ctx, existing.VendorID, from, to, vendorParamsFrom(req))
	if err != nil {
		return nil, err
	}

	statement := vendorSnapshotFrom(existing.VendorID, req, result)
	statement.StatementID = existing.StatementID
	statement.AuditFields = domain.AuditFields{
		CreatedAt:     existing.CreatedAt,
		CreatedBy:     existing.CreatedBy,
		LastUpdatedAt: time.Now(),
		LastUpdatedBy: updaterUserID,
	}

	if err := s.statementRepo.UpdateVendorStatement(ctx, statement); err != nil {
		s.LogError(ctx, err, "failed to update vendor statement", slog.String("statement_id", statementID))
		return nil, fmt.Errorf("failed to update vendor statement %s: %w", statementID, err)
	}
	return &statement, nil
}

func (s *statementService) GetVendorStatementByID(ctx context.Context, statementID string) (*domain.VendorStatement, error) {
	statement, err := s.statementRepo.FindVendorStatementByID(ctx, statementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor statement %s: %w", statementID, err)
	}
	return statement, nil
}

func (s *statementService) ListVendorStatementsByVendor(ctx context.Context, vendorID string) ([]domain.VendorStatement, error) {
	statements, err := s.statementRepo.ListVendorStatementsByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor statements for %s: %w", vendorID, err)
	}
	if statements == nil {
		return []domain.VendorStatement{}, nil
	}
	return statements, nil
}

func (s *statementService) DeleteVendorStatement(ctx context.Context, statementID string) error {
	if _, err := s.statementRepo.FindVendorStatementByID(ctx, statementID); err != nil {
		return fmt.Errorf("failed to find vendor statement %s for deletion: %w", statementID, err)
	}
	if err := s.statementRepo.DeleteVendorStatement(ctx, statementID); err != nil {
		return fmt.Errorf("failed to delete vendor statement %s: %w", statementID, err)
	}
	s.LogInfo(ctx, "vendor statement deleted", slog.String("statement_id", statementID))
	return nil
}

// parseStatementRange parses the YYYY-MM-DD pair used by snapshot requests.
func parseStatementRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.Parse(statementDateLayout, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid fromDate %q", apperrors.ErrValidation, fromStr)
	}
	to, err := time.Parse(statementDateLayout, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid toDate %q", apperrors.ErrValidation, toStr)
	}
	return from, to, nil
}

func periodSnapshotFrom(partyID string, result *ledger.StatementResult) domain.PeriodStatement {
	return domain.PeriodStatement{
		PartyID:        partyID,
		FromDate:       result.FromDate,
		ToDate:         result.ToDate,
		Subtotal:       result.PeriodSales,
		Discount:       result.Discount,
		OtherCharges:   result.OtherCharges,
		FinalTotal:     result.FinalTotal,
		OpeningBalance: result.PriorBalance,
		TotalPayments:  result.PeriodPayments,
		ClosingBalance: result.ClosingBalance,
	}
}

func vendorParamsFrom(req dto.SaveVendorStatementRequest) ledger.VendorStatementParams {
	return ledger.VendorStatementParams{
		Load:                    req.Load,
		MT:                      req.MT,
		Rent:                    req.Rent,
		RentIsAddition:          req.RentIsAddition,
		OtherExpenses:           req.OtherExpenses,
		OtherExpensesIsAddition: req.OtherExpensesIsAddition,
	}
}

func vendorSnapshotFrom(vendorID string, req dto.SaveVendorStatementRequest, result *ledger.VendorStatementResult) domain.VendorStatement {
	return domain.VendorStatement{
		VendorID:                vendorID,
		FromDate:                result.FromDate,
		ToDate:                  result.ToDate,
		VehicleNumber:           req.VehicleNumber,
		LoaderName:              req.LoaderName,
		Load:                    req.Load,
		MT:                      req.MT,
		TotalItems:              result.TotalItems,
		TotalGrossWeight:        result.TotalGrossWeight,
		TotalNetWeight:          result.TotalNetWeight,
		TotalAmount:             result.TotalAmount,
		Rent:                    req.Rent,
		RentIsAddition:          req.RentIsAddition,
		OtherExpenses:           req.OtherExpenses,
		OtherExpensesIsAddition: req.OtherExpensesIsAddition,
		FinalTotal:              result.FinalTotal,
	}
}
