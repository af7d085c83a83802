package ledger

import (
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Entry is a dated amount from one of the party's transaction streams.
// Every stream (invoices, payments, adjustments, purchases) is reduced to
// entries before aggregation so the summing logic exists exactly once.
type Entry struct {
	Date   time.Time
	Amount decimal.Decimal
}

// DateOf truncates a timestamp to its calendar date at UTC midnight.
// Aggregation is day-granular: a transaction timestamped mid-day belongs
// to that whole day, so a range bound can never split a day in two.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Sum adds entries dated on or before asOf, compared by calendar date.
// A nil asOf sums everything. Addition over decimals is exact and
// order-independent, so callers may pass entries in any order. An empty
// stream sums to zero, never an error.
func Sum(entries []Entry, asOf *time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if asOf != nil && DateOf(e.Date).After(DateOf(*asOf)) {
			continue
		}
		sum = sum.Add(e.Amount)
	}
	return sum
}

// SumBetween adds entries with from <= date <= to, both ends inclusive,
// compared by calendar date.
func SumBetween(entries []Entry, from, to time.Time) decimal.Decimal {
	fromDay, toDay := DateOf(from), DateOf(to)
	sum := decimal.Zero
	for _, e := range entries {
		d := DateOf(e.Date)
		if d.Before(fromDay) || d.After(toDay) {
			continue
		}
		sum = sum.Add(e.Amount)
	}
	return sum
}

// InvoiceEntries reduces invoices to their dated totals.
func InvoiceEntries(invoices []domain.Invoice) []Entry {
	entries := make([]Entry, len(invoices))
	for i, inv := range invoices {
		entries[i] = Entry{Date: inv.InvoiceDate, Amount: inv.Total}
	}
	return entries
}

// PaymentEntries reduces payments to their dated effective credits
// (amount plus bundled discount).
func PaymentEntries(payments []domain.Payment) []Entry {
	entries := make([]Entry, len(payments))
	for i, p := range payments {
		entries[i] = Entry{Date: p.PaymentDate, Amount: p.EffectiveCredit()}
	}
	return entries
}

// AdjustmentEntries reduces adjustments of the given type to dated unsigned
// magnitudes. The caller applies the sign.
func AdjustmentEntries(adjustments []domain.Adjustment, adjType domain.AdjustmentType) []Entry {
	entries := make([]Entry, 0, len(adjustments))
	for _, a := range adjustments {
		if a.AdjustmentType != adjType {
			continue
		}
		entries = append(entries, Entry{Date: a.AdjustmentDate, Amount: a.Amount})
	}
	return entries
}

// PurchaseEntries reduces vendor purchase records to their dated totals.
func PurchaseEntries(purchases []domain.PurchaseRecord) []Entry {
	entries := make([]Entry, len(purchases))
	for i, p := range purchases {
		entries[i] = Entry{Date: p.PurchaseDate, Amount: p.Total}
	}
	return entries
}
