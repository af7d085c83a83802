package dto

import (
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one regular weighed item on an invoice entry. Net
// weight and total are derived server-side, never accepted from the client.
type LineItemRequest struct {
	VendorID      string          `json:"vendorID" binding:"required"`
	ProductID     string          `json:"productID" binding:"required"`
	ProductName   string          `json:"productName" binding:"required"`
	Quantity      decimal.Decimal `json:"quantity"`
	GrossWeight   decimal.Decimal `json:"grossWeight" binding:"required"`
	BoxWeight     decimal.Decimal `json:"boxWeight"`
	BenchesWeight decimal.Decimal `json:"benchesWeight"`
	Rate          decimal.Decimal `json:"rate" binding:"required"`
}

// LooseItemRequest is one loose item on an invoice entry.
type LooseItemRequest struct {
	VendorID    *string           `json:"vendorID,omitempty"`
	ProductName string            `json:"productName" binding:"required"`
	NetWeight   decimal.Decimal   `json:"netWeight" binding:"required"`
	WeightUnit  domain.WeightUnit `json:"weightUnit" binding:"required,oneof=kg g"`
	Rate        decimal.Decimal   `json:"rate" binding:"required"`
}

// CreateInvoiceRequest is the request body for invoice entry. Subtotal and
// total are computed from the items.
type CreateInvoiceRequest struct {
	PartyID        string             `json:"partyID" binding:"required"`
	InvoiceDate    time.Time          `json:"invoiceDate" binding:"required"`
	Discount       decimal.Decimal    `json:"discount"`
	OtherCharges   decimal.Decimal    `json:"otherCharges"`
	ReceivedAmount decimal.Decimal    `json:"receivedAmount"`
	Items          []LineItemRequest  `json:"items"`
	LooseItems     []LooseItemRequest `json:"looseItems"`
}

// UpdateInvoiceRequest carries a full replacement of the invoice's entry
// data. Items are recreated wholesale.
type UpdateInvoiceRequest struct {
	InvoiceDate    time.Time          `json:"invoiceDate" binding:"required"`
	Discount       decimal.Decimal    `json:"discount"`
	OtherCharges   decimal.Decimal    `json:"otherCharges"`
	ReceivedAmount decimal.Decimal    `json:"receivedAmount"`
	Items          []LineItemRequest  `json:"items"`
	LooseItems     []LooseItemRequest `json:"looseItems"`
}

// InvoiceResponse is the API representation of an invoice with its items.
type InvoiceResponse struct {
	InvoiceID      string                   `json:"invoiceID"`
	PartyID        string                   `json:"partyID"`
	InvoiceDate    time.Time                `json:"invoiceDate"`
	Subtotal       decimal.Decimal          `json:"subtotal"`
	Discount       decimal.Decimal          `json:"discount"`
	OtherCharges   decimal.Decimal          `json:"otherCharges"`
	Total          decimal.Decimal          `json:"total"`
	ReceivedAmount decimal.Decimal          `json:"receivedAmount"`
	Status         domain.InvoiceStatus     `json:"status"`
	Items          []domain.InvoiceLineItem `json:"items"`
	LooseItems     []domain.LooseLineItem   `json:"looseItems"`
}

// ToInvoiceResponse converts a domain invoice to its API representation.
func ToInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		PartyID:        inv.PartyID,
		InvoiceDate:    inv.InvoiceDate,
		Subtotal:       inv.Subtotal,
		Discount:       inv.Discount,
		OtherCharges:   inv.OtherCharges,
		Total:          inv.Total,
		ReceivedAmount: inv.ReceivedAmount,
		Status:         inv.Status,
		Items:          inv.Items,
		LooseItems:     inv.LooseItems,
	}
}

// ToInvoiceResponses converts a list of domain invoices.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = ToInvoiceResponse(inv)
	}
	return out
}
