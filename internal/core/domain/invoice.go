package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus reflects how much of an invoice has been settled.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "PENDING"
	StatusPartial InvoiceStatus = "PARTIAL"
	StatusPaid    InvoiceStatus = "PAID"
)

// WeightUnit is the unit a loose line item's weight was entered in.
type WeightUnit string

const (
	Kilogram WeightUnit = "kg"
	Gram     WeightUnit = "g"
)

// Invoice is a sales invoice raised against a customer. The header totals
// are maintained by the writer: Total = Subtotal - Discount + OtherCharges,
// and Status is re-derived from ReceivedAmount vs Total on every save.
// Line items are owned by the invoice and are deleted and recreated
// wholesale on edit; there is no partial item patching.
type Invoice struct {
	InvoiceID      string            `json:"invoiceID"` // Primary Key (UUID)
	PartyID        string            `json:"partyID"`   // FK -> parties.party_id
	InvoiceDate    time.Time         `json:"invoiceDate"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	Discount       decimal.Decimal   `json:"discount"`
	OtherCharges   decimal.Decimal   `json:"otherCharges"`
	Total          decimal.Decimal   `json:"total"`
	ReceivedAmount decimal.Decimal   `json:"receivedAmount"`
	Status         InvoiceStatus     `json:"status"`
	Items          []InvoiceLineItem `json:"items"`
	LooseItems     []LooseLineItem   `json:"looseItems"`
	AuditFields
}

// DeriveStatus computes the settlement status from the received amount.
// Paid when received covers the total, partial when something but not all
// has been received, pending otherwise.
func DeriveStatus(total, receivedAmount decimal.Decimal) InvoiceStatus {
	switch {
	case receivedAmount.GreaterThanOrEqual(total):
		return StatusPaid
	case receivedAmount.GreaterThan(decimal.Zero):
		return StatusPartial
	default:
		return StatusPending
	}
}

// InvoiceLineItem is a regular weighed item on an invoice. NetWeight and
// Total are computed once at entry time and persisted; they are never
// recomputed on read.
//
// Invariants (enforced by the writer):
//
//	NetWeight = GrossWeight - BoxWeight - BenchesWeight
//	Total     = NetWeight * Rate
type InvoiceLineItem struct {
	LineItemID    string          `json:"lineItemID"` // Primary Key (UUID)
	InvoiceID     string          `json:"invoiceID"`  // FK -> invoices.invoice_id
	VendorID      string          `json:"vendorID"`   // FK -> parties.party_id (the supplying vendor)
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName"`
	Quantity      decimal.Decimal `json:"quantity"`
	GrossWeight   decimal.Decimal `json:"grossWeight"`
	BoxWeight     decimal.Decimal `json:"boxWeight"`
	BenchesWeight decimal.Decimal `json:"benchesWeight"`
	NetWeight     decimal.Decimal `json:"netWeight"`
	Rate          decimal.Decimal `json:"rate"`
	Total         decimal.Decimal `json:"total"`
}

// LooseLineItem is an unweighed (directly entered) item on an invoice.
// The rate is per the stored unit; Total is stored exactly as computed at
// entry and unit conversion happens only for display aggregation, never to
// the persisted total.
type LooseLineItem struct {
	LineItemID  string          `json:"lineItemID"` // Primary Key (UUID)
	InvoiceID   string          `json:"invoiceID"`  // FK -> invoices.invoice_id
	VendorID    *string         `json:"vendorID,omitempty"`
	ProductName string          `json:"productName"`
	NetWeight   decimal.Decimal `json:"netWeight"`
	WeightUnit  WeightUnit      `json:"weightUnit"`
	Rate        decimal.Decimal `json:"rate"`
	Total       decimal.Decimal `json:"total"`
}
