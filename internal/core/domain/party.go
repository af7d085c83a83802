package domain

import (
	"github.com/shopspring/decimal"
)

// PartyType distinguishes the two sides of the trading ledger.
type PartyType string

const (
	Customer PartyType = "CUSTOMER"
	Vendor   PartyType = "VENDOR"
)

// Party represents a customer or vendor that carries a ledger balance.
// The current balance is never stored; it is recomputed from the party's
// transaction streams on every read. Only the manually entered opening
// balance is persisted.
//
// Sign convention: for a customer a positive balance is a receivable (the
// customer owes the business); for a vendor a positive balance is a payable
// (the business owes the vendor).
type Party struct {
	PartyID        string          `json:"partyID"` // Primary Key (UUID)
	PartyType      PartyType       `json:"partyType"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Signed starting balance predating any recorded transaction
	IsActive       bool            `json:"isActive"`       // Soft delete flag
	AuditFields
}
