package ledger_test

import (
	"testing"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/mandikhata/trade_ledger_app/internal/core/ledger"
	"github.com/stretchr/testify/assert"
)

func TestToKilograms(t *testing.T) {
	tests := []struct {
		name  string
		value string
		unit  domain.WeightUnit
		want  string
	}{
		{name: "grams divide by thousand", value: "500", unit: domain.Gram, want: "0.5"},
		{name: "kilograms pass through", value: "500", unit: domain.Kilogram, want: "500"},
		{name: "fractional grams", value: "1250", unit: domain.Gram, want: "1.25"},
		{name: "zero", value: "0", unit: domain.Gram, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.ToKilograms(d(tt.value), tt.unit)
			assert.True(t, got.Equal(d(tt.want)), "got %s", got)
		})
	}
}

func TestLooseWeightKilograms_DoesNotTouchStoredTotals(t *testing.T) {
	// A 500 g loose item aggregates as 0.5 kg for display while its stored
	// total remains whatever was persisted at entry time.
	item := domain.LooseLineItem{
		ProductName: "Coriander",
		NetWeight:   d("500"),
		WeightUnit:  domain.Gram,
		Rate:        d("0.08"),
		Total:       d("40"),
	}

	sum := ledger.LooseWeightKilograms([]domain.LooseLineItem{item})
	assert.True(t, sum.Equal(d("0.5")), "got %s", sum)
	assert.True(t, item.Total.Equal(d("40")))
}
