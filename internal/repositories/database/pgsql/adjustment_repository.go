package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mandikhata/trade_ledger_app/internal/apperrors"
	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
)

type PgxAdjustmentRepository struct {
	BaseRepository
}

// newPgxAdjustmentRepository creates a new repository for adjustment data.
func newPgxAdjustmentRepository(pool *pgxpool.Pool) portsrepo.AdjustmentRepositoryFacade {
	return &PgxAdjustmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AdjustmentRepositoryFacade = (*PgxAdjustmentRepository)(nil)

const adjustmentColumns = `adjustment_id, party_id, adjustment_date, amount, adjustment_type, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanAdjustment(row pgx.Row) (domain.Adjustment, error) {
	var a domain.Adjustment
	err := row.Scan(
		&a.AdjustmentID,
		&a.PartyID,
		&a.AdjustmentDate,
		&a.Amount,
		&a.AdjustmentType,
		&a.Notes,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

// SaveAdjustment inserts a new adjustment.
func (r *PgxAdjustmentRepository) SaveAdjustment(ctx context.Context, adjustment domain.Adjustment) error {
	query := `
		INSERT INTO adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		adjustment.AdjustmentID,
		adjustment.PartyID,
		adjustment.AdjustmentDate,
		adjustment.Amount,
		adjustment.AdjustmentType,
		adjustment.Notes,
		adjustment.CreatedAt,
		adjustment.CreatedBy,
		adjustment.LastUpdatedAt,
		adjustment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save adjustment %s: %w", adjustment.AdjustmentID, err)
	}
	return nil
}

// FindAdjustmentByID retrieves an adjustment by its unique identifier.
func (r *PgxAdjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.Adjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments WHERE adjustment_id = $1;`
	adjustment, err := scanAdjustment(r.Pool.QueryRow(ctx, query, adjustmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find adjustment %s: %w", adjustmentID, err)
	}
	return &adjustment, nil
}

// ListAdjustmentsByParty retrieves a party's adjustments, optionally
// bounded to from <= adjustment_date <= to (inclusive).
func (r *PgxAdjustmentRepository) ListAdjustmentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Adjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments WHERE party_id = $1`
	args := []any{partyID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND adjustment_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND adjustment_date <= $%d", len(args))
	}
	query += " ORDER BY adjustment_date, adjustment_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjustments for party %s: %w", partyID, err)
	}
	defer rows.Close()

	adjustments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Adjustment, error) {
		return scanAdjustment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan adjustments: %w", err)
	}
	return adjustments, nil
}

// DeleteAdjustment removes an adjustment.
func (r *PgxAdjustmentRepository) DeleteAdjustment(ctx context.Context, adjustmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM adjustments WHERE adjustment_id = $1;`, adjustmentID)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment %s: %w", adjustmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
