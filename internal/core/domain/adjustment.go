package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentType says which way a manual adjustment moves the balance.
type AdjustmentType string

const (
	// AdjustmentDiscount reduces the party's balance.
	AdjustmentDiscount AdjustmentType = "DISCOUNT"
	// AdjustmentAdditional increases the party's balance.
	AdjustmentAdditional AdjustmentType = "ADDITIONAL"
)

// Adjustment is a manual, non-invoice, non-payment ledger entry. Amount is
// an unsigned magnitude; the type carries the sign.
type Adjustment struct {
	AdjustmentID   string          `json:"adjustmentID"` // Primary Key (UUID)
	PartyID        string          `json:"partyID"`      // FK -> parties.party_id
	AdjustmentDate time.Time       `json:"adjustmentDate"`
	Amount         decimal.Decimal `json:"amount"` // Unsigned magnitude
	AdjustmentType AdjustmentType  `json:"adjustmentType"`
	Notes          string          `json:"notes"`
	AuditFields
}

// SignedAmount applies the adjustment type's sign to the magnitude.
func (a Adjustment) SignedAmount() decimal.Decimal {
	if a.AdjustmentType == AdjustmentDiscount {
		return a.Amount.Neg()
	}
	return a.Amount
}
