package ledger

import (
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Balance computes a customer's signed ledger balance from already
// materialized transaction streams, as of an optional inclusive cutoff:
//
//	balance = openingBalance
//	        + sum(invoices.total)
//	        + sum(additional adjustments)
//	        - sum(payments.amount + payments.discount)
//	        - sum(discount adjustments)
//
// Positive means the customer owes the business. There is no caching: every
// call recomputes from the source streams, so a balance can never go stale.
// An asOf in the future simply includes everything.
func Balance(opening decimal.Decimal, invoices []domain.Invoice, payments []domain.Payment, adjustments []domain.Adjustment, asOf *time.Time) decimal.Decimal {
	return opening.
		Add(Sum(InvoiceEntries(invoices), asOf)).
		Add(Sum(AdjustmentEntries(adjustments, domain.AdjustmentAdditional), asOf)).
		Sub(Sum(PaymentEntries(payments), asOf)).
		Sub(Sum(AdjustmentEntries(adjustments, domain.AdjustmentDiscount), asOf))
}

// VendorBalance computes a vendor's signed balance: opening balance plus
// accumulated purchase totals. Vendors have no payment or adjustment stream
// here - vendor receipts are a separate subsystem - so the balance is
// monotonic non-decreasing unless a purchase record is deleted. This
// asymmetry with the customer ledger is deliberate.
func VendorBalance(opening decimal.Decimal, purchases []domain.PurchaseRecord, asOf *time.Time) decimal.Decimal {
	return opening.Add(Sum(PurchaseEntries(purchases), asOf))
}
