package dto

import (
	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest is the request body for creating a customer or vendor.
type CreatePartyRequest struct {
	PartyType      domain.PartyType `json:"partyType" binding:"required,oneof=CUSTOMER VENDOR"`
	Name           string           `json:"name" binding:"required"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
}

// UpdatePartyRequest is the request body for updating a party. Nil fields
// are left unchanged.
type UpdatePartyRequest struct {
	Name           *string          `json:"name,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	Address        *string          `json:"address,omitempty"`
	OpeningBalance *decimal.Decimal `json:"openingBalance,omitempty"`
}

// PartyResponse is the API representation of a party.
type PartyResponse struct {
	PartyID        string           `json:"partyID"`
	PartyType      domain.PartyType `json:"partyType"`
	Name           string           `json:"name"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
}

// PartyBalanceResponse is a party with its recomputed balance.
type PartyBalanceResponse struct {
	PartyResponse
	Balance decimal.Decimal `json:"balance"`
}

// ToPartyResponse converts a domain party to its API representation.
func ToPartyResponse(p domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:        p.PartyID,
		PartyType:      p.PartyType,
		Name:           p.Name,
		Phone:          p.Phone,
		Address:        p.Address,
		OpeningBalance: p.OpeningBalance,
	}
}

// ToPartyBalanceResponses converts parties with balances to their API
// representation.
func ToPartyBalanceResponses(balances []domain.PartyBalance) []PartyBalanceResponse {
	out := make([]PartyBalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = PartyBalanceResponse{
			PartyResponse: ToPartyResponse(b.Party),
			Balance:       b.Balance,
		}
	}
	return out
}
