package repositories

import (
	"context"
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
)

// PurchaseReader reads the vendor-side purchase stream: invoice line items
// attributed to a vendor, joined with their invoice dates. Purchases are
// written through the invoice repository, so there is no writer interface.
type PurchaseReader interface {
	// ListPurchasesByVendor retrieves a vendor's purchase records,
	// optionally bounded to from <= purchase_date <= to (inclusive).
	ListPurchasesByVendor(ctx context.Context, vendorID string, from, to *time.Time) ([]domain.PurchaseRecord, error)
}
