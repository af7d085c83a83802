package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItemInput carries the raw weights and rate entered for a regular
// invoice line item.
type LineItemInput struct {
	Quantity      decimal.Decimal
	GrossWeight   decimal.Decimal
	BoxWeight     decimal.Decimal
	BenchesWeight decimal.Decimal
	Rate          decimal.Decimal
}

// LineItemResult holds the derived values persisted with a line item.
type LineItemResult struct {
	NetWeight decimal.Decimal
	Total     decimal.Decimal
}

// ComputeLineItem derives net weight and line total for a regular item:
//
//	netWeight = grossWeight - boxWeight - benchesWeight
//	total     = netWeight * rate
//
// A negative net weight is rejected with ErrInvalidLineItem. This check
// happens once at entry time; persisted values are trusted on read.
func ComputeLineItem(in LineItemInput) (LineItemResult, error) {
	netWeight := in.GrossWeight.Sub(in.BoxWeight).Sub(in.BenchesWeight)
	if netWeight.IsNegative() {
		return LineItemResult{}, fmt.Errorf("%w: gross %s, box %s, benches %s",
			ErrInvalidLineItem, in.GrossWeight, in.BoxWeight, in.BenchesWeight)
	}
	return LineItemResult{
		NetWeight: netWeight,
		Total:     netWeight.Mul(in.Rate),
	}, nil
}

// ComputeLooseItemTotal derives the total for a loose item. The rate is
// always per the stored unit, so no unit coercion is applied here.
func ComputeLooseItemTotal(netWeight, rate decimal.Decimal) decimal.Decimal {
	return netWeight.Mul(rate)
}

// AdjustedGrossWeight is gross weight minus bench/stand tare only. Vendor
// yield statements deduct benches but not box weight; box weight is a
// customer-facing packaging deduction. This asymmetry with net weight is
// intentional.
func AdjustedGrossWeight(grossWeight, benchesWeight decimal.Decimal) decimal.Decimal {
	return grossWeight.Sub(benchesWeight)
}
