package ledger

import "errors"

// ErrInvalidLineItem indicates a line item whose derived net weight would be
// negative. Rejected at entry time, never silently coerced.
var ErrInvalidLineItem = errors.New("invalid line item: net weight is negative")

// ErrInvalidDateRange indicates a statement range whose end precedes its
// start. Rejected before any aggregation runs.
var ErrInvalidDateRange = errors.New("invalid date range: end date precedes start date")
