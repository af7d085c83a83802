package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the channel a payment was received through.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "CASH"
	MethodBank   PaymentMethod = "BANK"
	MethodUPI    PaymentMethod = "UPI"
	MethodCheque PaymentMethod = "CHEQUE"
)

// Payment is money received from a party, optionally against a specific
// invoice. Discount is a companion waived amount bundled with the payment;
// the ledger credit of a payment is Amount + Discount.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	PartyID     *string         `json:"partyID,omitempty"`
	InvoiceID   *string         `json:"invoiceID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Discount    decimal.Decimal `json:"discount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      PaymentMethod   `json:"method"`
	Notes       string          `json:"notes"`
	AuditFields
}

// EffectiveCredit is the amount this payment reduces the party's balance by.
func (p Payment) EffectiveCredit() decimal.Decimal {
	return p.Amount.Add(p.Discount)
}
