package ledger

import (
	"sort"
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DayActivity is one calendar day of displayable statement rows.
type DayActivity struct {
	Date       time.Time                `json:"date"`
	Items      []domain.InvoiceLineItem `json:"items"`
	LooseItems []domain.LooseLineItem   `json:"looseItems"`
	Payments   []domain.Payment         `json:"payments"`
}

// StatementResult is the outcome of building a period statement for a
// party: the carried-forward prior balance, the in-period aggregates, and
// the day-grouped rows for display.
type StatementResult struct {
	FromDate          time.Time       `json:"fromDate"`
	ToDate            time.Time       `json:"toDate"`
	PriorBalance      decimal.Decimal `json:"priorBalance"`
	PeriodSales       decimal.Decimal `json:"periodSales"`
	PeriodPayments    decimal.Decimal `json:"periodPayments"`
	PeriodAdjustments decimal.Decimal `json:"periodAdjustments"` // Signed net of in-range adjustments, informational
	Discount          decimal.Decimal `json:"discount"`          // Manual statement-level discount
	OtherCharges      decimal.Decimal `json:"otherCharges"`      // Manual statement-level charges
	FinalTotal        decimal.Decimal `json:"finalTotal"`
	ClosingBalance    decimal.Decimal `json:"closingBalance"`
	LooseWeightKg     decimal.Decimal `json:"looseWeightKg"` // Display aggregate of in-range loose item weights
	Days              []DayActivity   `json:"days"`
}

// BuildPeriodStatement turns a party's full transaction streams into a
// period statement over [from, to], both ends inclusive:
//
//	priorBalance   = balance as of the day before from
//	periodSales    = sum(invoices.total in range)
//	periodPayments = sum(payments.amount + payments.discount in range)
//	finalTotal     = periodSales - discount + otherCharges
//	closingBalance = priorBalance + finalTotal - periodPayments
//
// The arithmetic composes across period boundaries: splitting [a,b] at m and
// carrying closingBalance([a,m]) forward as the prior balance of [m+1,b]
// yields exactly closingBalance([a,b]). Dates compare at day granularity, so
// a transaction timestamped mid-day counts on its calendar day and always
// lands in exactly one side of a split.
//
// includePayments only controls whether payments appear in the itemized day
// rows; the aggregates are identical either way. A party with no activity in
// range yields zero sums and closing == prior, not an error.
func BuildPeriodStatement(party domain.Party, invoices []domain.Invoice, payments []domain.Payment, adjustments []domain.Adjustment, from, to time.Time, discount, otherCharges decimal.Decimal, includePayments bool) (*StatementResult, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	dayBeforeFrom := from.AddDate(0, 0, -1)
	priorBalance := Balance(party.OpeningBalance, invoices, payments, adjustments, &dayBeforeFrom)

	periodSales := SumBetween(InvoiceEntries(invoices), from, to)
	periodPayments := SumBetween(PaymentEntries(payments), from, to)
	periodAdjustments := SumBetween(AdjustmentEntries(adjustments, domain.AdjustmentAdditional), from, to).
		Sub(SumBetween(AdjustmentEntries(adjustments, domain.AdjustmentDiscount), from, to))

	finalTotal := periodSales.Sub(discount).Add(otherCharges)
	closingBalance := priorBalance.Add(finalTotal).Sub(periodPayments)

	days, looseWeightKg := groupByDay(invoices, payments, from, to, includePayments)

	return &StatementResult{
		FromDate:          from,
		ToDate:            to,
		PriorBalance:      priorBalance,
		PeriodSales:       periodSales,
		PeriodPayments:    periodPayments,
		PeriodAdjustments: periodAdjustments,
		Discount:          discount,
		OtherCharges:      otherCharges,
		FinalTotal:        finalTotal,
		ClosingBalance:    closingBalance,
		LooseWeightKg:     looseWeightKg,
		Days:              days,
	}, nil
}

// groupByDay buckets in-range invoice line items and payments by calendar
// date, sorted ascending. Payments are left out of the rows when the display
// toggle is off; they still count toward the statement aggregates.
func groupByDay(invoices []domain.Invoice, payments []domain.Payment, from, to time.Time, includePayments bool) ([]DayActivity, decimal.Decimal) {
	buckets := make(map[string]*DayActivity)
	looseWeightKg := decimal.Zero

	fromDay, toDay := DateOf(from), DateOf(to)

	bucket := func(d time.Time) *DayActivity {
		day := DateOf(d)
		key := day.Format("2006-01-02")
		if b, ok := buckets[key]; ok {
			return b
		}
		b := &DayActivity{Date: day}
		buckets[key] = b
		return b
	}

	for _, inv := range invoices {
		d := DateOf(inv.InvoiceDate)
		if d.Before(fromDay) || d.After(toDay) {
			continue
		}
		b := bucket(inv.InvoiceDate)
		b.Items = append(b.Items, inv.Items...)
		b.LooseItems = append(b.LooseItems, inv.LooseItems...)
		looseWeightKg = looseWeightKg.Add(LooseWeightKilograms(inv.LooseItems))
	}

	if includePayments {
		for _, p := range payments {
			d := DateOf(p.PaymentDate)
			if d.Before(fromDay) || d.After(toDay) {
				continue
			}
			b := bucket(p.PaymentDate)
			b.Payments = append(b.Payments, p)
		}
	}

	days := make([]DayActivity, 0, len(buckets))
	for _, b := range buckets {
		days = append(days, *b)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days, looseWeightKg
}
