package services

import (
	"context"
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// PartySvcFacade defines operations on customers and vendors, including
// the recomputed ledger balance.
type PartySvcFacade interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error)

	// ListPartiesWithBalances returns parties of the given type with their
	// balances recomputed from source transactions.
	ListPartiesWithBalances(ctx context.Context, partyType domain.PartyType) ([]domain.PartyBalance, error)

	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error)
	DeactivateParty(ctx context.Context, partyID string, updaterUserID string) error

	// GetPartyBalance recomputes the party's signed balance as of an
	// optional inclusive cutoff. Customers and vendors use different
	// transaction streams (see the ledger package).
	GetPartyBalance(ctx context.Context, partyID string, asOf *time.Time) (decimal.Decimal, error)
}
