package dto

import (
	"github.com/shopspring/decimal"
)

// PeriodStatementOptions are the caller-supplied knobs of a period
// statement build. IncludePayments is display-only: it never changes the
// aggregates.
type PeriodStatementOptions struct {
	Discount        decimal.Decimal
	OtherCharges    decimal.Decimal
	IncludePayments bool
}

// SavePeriodStatementRequest is the request body for freezing a period
// statement snapshot. The computed figures are derived server-side at save
// time.
type SavePeriodStatementRequest struct {
	FromDate     string          `json:"fromDate" binding:"required"` // YYYY-MM-DD
	ToDate       string          `json:"toDate" binding:"required"`   // YYYY-MM-DD
	Discount     decimal.Decimal `json:"discount"`
	OtherCharges decimal.Decimal `json:"otherCharges"`
}

// SaveVendorStatementRequest is the request body for freezing a vendor
// yield statement snapshot.
type SaveVendorStatementRequest struct {
	FromDate                string          `json:"fromDate" binding:"required"` // YYYY-MM-DD
	ToDate                  string          `json:"toDate" binding:"required"`   // YYYY-MM-DD
	VehicleNumber           string          `json:"vehicleNumber"`
	LoaderName              string          `json:"loaderName"`
	Load                    decimal.Decimal `json:"load"`
	MT                      decimal.Decimal `json:"mt"`
	Rent                    decimal.Decimal `json:"rent"`
	RentIsAddition          bool            `json:"rentIsAddition"`
	OtherExpenses           decimal.Decimal `json:"otherExpenses"`
	OtherExpensesIsAddition bool            `json:"otherExpensesIsAddition"`
}
