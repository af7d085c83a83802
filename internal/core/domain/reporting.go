package domain

import (
	"github.com/shopspring/decimal"
)

// PartyBalance pairs a party with its recomputed ledger balance.
type PartyBalance struct {
	Party   Party           `json:"party"`
	Balance decimal.Decimal `json:"balance"`
}

// DashboardSummary aggregates recomputed balances across all parties for
// the dashboard stats surface.
type DashboardSummary struct {
	TotalReceivable decimal.Decimal `json:"totalReceivable"` // Sum of positive customer balances
	TotalPayable    decimal.Decimal `json:"totalPayable"`    // Sum of vendor balances
	CustomerCount   int             `json:"customerCount"`
	VendorCount     int             `json:"vendorCount"`
	PendingInvoices int             `json:"pendingInvoices"`
}
