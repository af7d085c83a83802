package dto

import (
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the request body for recording a payment.
// Discount is the waived amount bundled with the payment; both together
// credit the party's ledger.
type CreatePaymentRequest struct {
	PartyID     *string              `json:"partyID,omitempty"`
	InvoiceID   *string              `json:"invoiceID,omitempty"`
	Amount      decimal.Decimal      `json:"amount" binding:"required,gte=0"`
	Discount    decimal.Decimal      `json:"discount" binding:"gte=0"`
	PaymentDate time.Time            `json:"paymentDate" binding:"required"`
	Method      domain.PaymentMethod `json:"method" binding:"required,oneof=CASH BANK UPI CHEQUE"`
	Notes       string               `json:"notes"`
}

// CreateAdjustmentRequest is the request body for a manual ledger
// adjustment. Amount is an unsigned magnitude; the type carries the sign.
type CreateAdjustmentRequest struct {
	PartyID        string                `json:"partyID" binding:"required"`
	AdjustmentDate time.Time             `json:"adjustmentDate" binding:"required"`
	Amount         decimal.Decimal       `json:"amount" binding:"required,gte=0"`
	AdjustmentType domain.AdjustmentType `json:"adjustmentType" binding:"required,oneof=DISCOUNT ADDITIONAL"`
	Notes          string                `json:"notes"`
}
