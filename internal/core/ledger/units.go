package ledger

import (
	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ToKilograms normalizes a weight value to kilograms. Grams are shifted by
// three decimal places; kilograms pass through unchanged. This is a pure,
// total function used only for display aggregation - it never mutates a
// persisted total.
func ToKilograms(value decimal.Decimal, unit domain.WeightUnit) decimal.Decimal {
	if unit == domain.Gram {
		return value.Shift(-3)
	}
	return value
}

// LooseWeightKilograms sums the net weights of loose line items, normalizing
// each to kilograms. The items' stored totals are not touched.
func LooseWeightKilograms(items []domain.LooseLineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(ToKilograms(item.NetWeight, item.WeightUnit))
	}
	return sum
}
