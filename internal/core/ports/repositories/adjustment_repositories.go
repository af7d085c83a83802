package repositories

import (
	"context"
	"time"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
)

// AdjustmentReader defines read operations for manual ledger adjustments
type AdjustmentReader interface {
	FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.Adjustment, error)

	// ListAdjustmentsByParty retrieves a party's adjustments, optionally
	// bounded to from <= adjustment_date <= to (inclusive).
	ListAdjustmentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Adjustment, error)
}

// AdjustmentWriter defines write operations for manual ledger adjustments
type AdjustmentWriter interface {
	SaveAdjustment(ctx context.Context, adjustment domain.Adjustment) error
	DeleteAdjustment(ctx context.Context, adjustmentID string) error
}

// AdjustmentRepositoryFacade combines all adjustment-related repository interfaces
type AdjustmentRepositoryFacade interface {
	AdjustmentReader
	AdjustmentWriter
}
