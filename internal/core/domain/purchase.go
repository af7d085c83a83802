package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRecord is the vendor-side read model: an invoice line item
// attributed to the supplying vendor, joined with its invoice date. Vendor
// balances and yield statements are built from these records; vendors have
// no payment or adjustment stream in this system (vendor receipts live in a
// separate subsystem).
type PurchaseRecord struct {
	LineItemID    string          `json:"lineItemID"`
	InvoiceID     string          `json:"invoiceID"`
	VendorID      string          `json:"vendorID"`
	PurchaseDate  time.Time       `json:"purchaseDate"` // Date of the owning invoice
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName"`
	Quantity      decimal.Decimal `json:"quantity"`
	GrossWeight   decimal.Decimal `json:"grossWeight"`
	BoxWeight     decimal.Decimal `json:"boxWeight"`
	BenchesWeight decimal.Decimal `json:"benchesWeight"`
	NetWeight     decimal.Decimal `json:"netWeight"`
	Total         decimal.Decimal `json:"total"`
}
