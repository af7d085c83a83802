package repositories

import (
	"context"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a party by its unique identifier. Returns
	// apperrors.ErrNotFound when no matching record exists.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves all active parties of the given type.
	ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	SaveParty(ctx context.Context, party domain.Party) error
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeactivateParty soft-deletes a party.
	DeactivateParty(ctx context.Context, partyID string, updatedBy string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
