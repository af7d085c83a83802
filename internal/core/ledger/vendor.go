package ledger

import (
	"sort"
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VendorStatementParams carries the weighbridge reading and the manual
// rent/expense adjustments entered when a vendor yield statement is built.
// The isAddition flags only live at this input boundary; internally the
// deltas are signed.
type VendorStatementParams struct {
	Load                    decimal.Decimal
	MT                      decimal.Decimal
	Rent                    decimal.Decimal
	RentIsAddition          bool
	OtherExpenses           decimal.Decimal
	OtherExpensesIsAddition bool
}

// ProductGroup accumulates the purchases of one product within a vendor
// statement. Grouping is by product name, not product id: two differently
// spelled entries for the same product will not merge. That matches the
// statements this system has historically produced.
type ProductGroup struct {
	ProductName   string          `json:"productName"`
	Items         int             `json:"items"`
	Quantity      decimal.Decimal `json:"quantity"`
	AdjustedGross decimal.Decimal `json:"adjustedGrossWeight"` // gross - benches, box weight excluded
	NetWeight     decimal.Decimal `json:"netWeight"`
	Total         decimal.Decimal `json:"total"`
}

// VendorStatementResult is a built (not yet saved) vendor yield statement.
type VendorStatementResult struct {
	FromDate         time.Time       `json:"fromDate"`
	ToDate           time.Time       `json:"toDate"`
	Groups           []ProductGroup  `json:"groups"`
	TotalItems       int             `json:"totalItems"`
	TotalGrossWeight decimal.Decimal `json:"totalGrossWeight"`
	TotalNetWeight   decimal.Decimal `json:"totalNetWeight"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	LoadMTVariance   decimal.Decimal `json:"loadMtVariance"` // load - mt - totalGrossWeight, informational only
	RentDelta        decimal.Decimal `json:"rentDelta"`
	ExpenseDelta     decimal.Decimal `json:"expenseDelta"`
	FinalTotal       decimal.Decimal `json:"finalTotal"`
}

// BuildVendorStatement reconciles a vendor's in-range purchases against the
// weighbridge load/MT reading and applies the signed rent and expense
// deltas:
//
//	loadMtVariance = load - mt - totalGrossWeight
//	finalTotal     = totalAmount + rentDelta + expenseDelta
//
// The variance is informational; its sign indicates over/under relative to
// the weighbridge reading and it never feeds into finalTotal.
func BuildVendorStatement(purchases []domain.PurchaseRecord, from, to time.Time, params VendorStatementParams) (*VendorStatementResult, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	fromDay, toDay := DateOf(from), DateOf(to)
	groups := make(map[string]*ProductGroup)
	totalItems := 0
	for _, p := range purchases {
		d := DateOf(p.PurchaseDate)
		if d.Before(fromDay) || d.After(toDay) {
			continue
		}
		g, ok := groups[p.ProductName]
		if !ok {
			g = &ProductGroup{
				ProductName:   p.ProductName,
				Quantity:      decimal.Zero,
				AdjustedGross: decimal.Zero,
				NetWeight:     decimal.Zero,
				Total:         decimal.Zero,
			}
			groups[p.ProductName] = g
		}
		g.Items++
		g.Quantity = g.Quantity.Add(p.Quantity)
		g.AdjustedGross = g.AdjustedGross.Add(AdjustedGrossWeight(p.GrossWeight, p.BenchesWeight))
		g.NetWeight = g.NetWeight.Add(p.NetWeight)
		g.Total = g.Total.Add(p.Total)
		totalItems++
	}

	sorted := make([]ProductGroup, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, *g)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ProductName < sorted[j].ProductName
	})

	totalGross := decimal.Zero
	totalNet := decimal.Zero
	totalAmount := decimal.Zero
	for _, g := range sorted {
		totalGross = totalGross.Add(g.AdjustedGross)
		totalNet = totalNet.Add(g.NetWeight)
		totalAmount = totalAmount.Add(g.Total)
	}

	rentDelta := params.Rent
	if !params.RentIsAddition {
		rentDelta = rentDelta.Neg()
	}
	expenseDelta := params.OtherExpenses
	if !params.OtherExpensesIsAddition {
		expenseDelta = expenseDelta.Neg()
	}

	return &VendorStatementResult{
		FromDate:         from,
		ToDate:           to,
		Groups:           sorted,
		TotalItems:       totalItems,
		TotalGrossWeight: totalGross,
		TotalNetWeight:   totalNet,
		TotalAmount:      totalAmount,
		LoadMTVariance:   params.Load.Sub(params.MT).Sub(totalGross),
		RentDelta:        rentDelta,
		ExpenseDelta:     expenseDelta,
		FinalTotal:       totalAmount.Add(rentDelta).Add(expenseDelta),
	}, nil
}
