package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatement is a persisted snapshot of a customer period statement.
// It freezes the computation at save time: new transactions in the covered
// range do not refresh a saved statement, it must be explicitly re-saved.
type PeriodStatement struct {
	StatementID    string          `json:"statementID"` // Primary Key (UUID)
	PartyID        string          `json:"partyID"`     // FK -> parties.party_id
	FromDate       time.Time       `json:"fromDate"`
	ToDate         time.Time       `json:"toDate"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`     // Manual statement-level discount
	OtherCharges   decimal.Decimal `json:"otherCharges"` // Manual statement-level charges
	FinalTotal     decimal.Decimal `json:"finalTotal"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Prior balance at range start
	TotalPayments  decimal.Decimal `json:"totalPayments"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	AuditFields
}

// VendorStatement is a persisted snapshot of a vendor load/MT yield
// statement. Same freeze semantics as PeriodStatement: created on explicit
// save, mutable via update under the same id, never auto-regenerated.
type VendorStatement struct {
	StatementID             string          `json:"statementID"` // Primary Key (UUID)
	VendorID                string          `json:"vendorID"`    // FK -> parties.party_id
	FromDate                time.Time       `json:"fromDate"`
	ToDate                  time.Time       `json:"toDate"`
	VehicleNumber           string          `json:"vehicleNumber"`
	LoaderName              string          `json:"loaderName"`
	Load                    decimal.Decimal `json:"load"` // Weighbridge gross vehicle weight
	MT                      decimal.Decimal `json:"mt"`   // Weighbridge empty/tare weight
	TotalItems              int             `json:"totalItems"`
	TotalGrossWeight        decimal.Decimal `json:"totalGrossWeight"` // Sum of adjusted gross weights
	TotalNetWeight          decimal.Decimal `json:"totalNetWeight"`
	TotalAmount             decimal.Decimal `json:"totalAmount"`
	Rent                    decimal.Decimal `json:"rent"`
	RentIsAddition          bool            `json:"rentIsAddition"`
	OtherExpenses           decimal.Decimal `json:"otherExpenses"`
	OtherExpensesIsAddition bool            `json:"otherExpensesIsAddition"`
	FinalTotal              decimal.Decimal `json:"finalTotal"`
	AuditFields
}
