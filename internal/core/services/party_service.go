package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/mandikhata/trade_ledger_app/internal/core/ledger"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

// partyService provides party CRUD and the recomputed ledger balance.
// Balances are never stored: every read aggregates the party's transaction
// streams from scratch.
type partyService struct {
	BaseService
	partyRepo      portsrepo.PartyRepositoryFacade
	invoiceRepo    portsrepo.InvoiceReader
	paymentRepo    portsrepo.PaymentReader
	adjustmentRepo portsrepo.AdjustmentReader
	purchaseRepo   portsrepo.PurchaseReader
}

// NewPartyService creates a new PartyService.
func NewPartyService(
	partyRepo portsrepo.PartyRepositoryFacade,
	invoiceRepo portsrepo.InvoiceReader,
	paymentRepo portsrepo.PaymentReader,
	adjustmentRepo portsrepo.AdjustmentReader,
	purchaseRepo portsrepo.PurchaseReader,
) portssvc.PartySvcFacade {
	return &partyService{
		partyRepo:      partyRepo,
		invoiceRepo:    invoiceRepo,
		paymentRepo:    paymentRepo,
		adjustmentRepo: adjustmentRepo,
		purchaseRepo:   purchaseRepo,
	}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	now := time.Now()
	party := domain.Party{
		PartyID:        uuid.NewString(),
		PartyType:      req.PartyType,
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		OpeningBalance: req.OpeningBalance,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "failed to save party", slog.String("party_name", req.Name))
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	s.LogInfo(ctx, "party created", slog.String("party_id", party.PartyID), slog.String("party_type", string(party.PartyType)))
	return &party, nil
}

func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get party %s: %w", partyID, err)
	}
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx, partyType)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	if parties == nil {
		return []domain.Party{}, nil
	}
	return parties, nil
}

func (s *partyService) ListPartiesWithBalances(ctx context.Context, partyType domain.PartyType) ([]domain.PartyBalance, error) {
	parties, err := s.ListParties(ctx, partyType)
	if err != nil {
		return nil, err
	}

	balances := make([]domain.PartyBalance, 0, len(parties))
	for _, party := range parties {
		balance, err := s.balanceFor(ctx, party, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to compute balance for party %s: %w", party.PartyID, err)
		}
		balances = append(balances, domain.PartyBalance{Party: party, Balance: balance})
	}
	return balances, nil
}

func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find party %s for update: %w", partyID, err)
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	if req.OpeningBalance != nil {
		party.OpeningBalance = *req.OpeningBalance
	}
	party.LastUpdatedAt = time.Now()
	party.LastUpdatedBy = updaterUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "failed to update party", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to update party %s: %w", partyID, err)
	}
	return party, nil
}

func (s *partyService) DeactivateParty(ctx context.Context, partyID string, updaterUserID string) error {
	// Existence check first so callers get ErrNotFound instead of a silent no-op.
	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		return fmt.Errorf("failed to find party %s for deactivation: %w", partyID, err)
	}
	if err := s.partyRepo.DeactivateParty(ctx, partyID, updaterUserID); err != nil {
		return fmt.Errorf("failed to deactivate party %s: %w", partyID, err)
	}
	s.LogInfo(ctx, "party deactivated", slog.String("party_id", partyID))
	return nil
}

func (s *partyService) GetPartyBalance(ctx context.Context, partyID string, asOf *time.Time) (decimal.Decimal, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find party %s for balance: %w", partyID, err)
	}
	return s.balanceFor(ctx, *party, asOf)
}

// balanceFor dispatches to the right balance formula for the party type.
// Vendors aggregate purchases only; customer payments and adjustments do
// not enter the vendor stream.
func (s *partyService) balanceFor(ctx context.Context, party domain.Party, asOf *time.Time) (decimal.Decimal, error) {
	if party.PartyType == domain.Vendor {
		purchases, err := s.purchaseRepo.ListPurchasesByVendor(ctx, party.PartyID, nil, nil)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to list purchases for vendor %s: %w", party.PartyID, err)
		}
		return ledger.VendorBalance(party.OpeningBalance, purchases, asOf), nil
	}

	invoices, err := s.invoiceRepo.ListInvoicesByParty(ctx, party.PartyID, nil, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list invoices for party %s: %w", party.PartyID, err)
	}
	payments, err := s.paymentRepo.ListPaymentsByParty(ctx, party.PartyID, nil, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list payments for party %s: %w", party.PartyID, err)
	}
	adjustments, err := s.adjustmentRepo.ListAdjustmentsByParty(ctx, party.PartyID, nil, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list adjustments for party %s: %w", party.PartyID, err)
	}

	return ledger.Balance(party.OpeningBalance, invoices, payments, adjustments, asOf), nil
}
