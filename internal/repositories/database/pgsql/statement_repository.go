package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mandikhata/trade_ledger_app/internal/apperrors"
	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
)

// PgxStatementRepository persists frozen statement snapshots. Every write
// is a single row, so snapshot saves need no explicit transaction.
type PgxStatementRepository struct {
	BaseRepository
}

// newPgxStatementRepository creates a new repository for statement snapshots.
func newPgxStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepositoryFacade {
	return &PgxStatementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StatementRepositoryFacade = (*PgxStatementRepository)(nil)

const periodStatementColumns = `statement_id, party_id, from_date, to_date, subtotal, discount, other_charges, final_total, opening_balance, total_payments, closing_balance, created_at, created_by, last_updated_at, last_updated_by`

func scanPeriodStatement(row pgx.Row) (domain.PeriodStatement, error) {
	var s domain.PeriodStatement
	err := row.Scan(
		&s.StatementID,
		&s.PartyID,
		&s.FromDate,
		&s.ToDate,
		&s.Subtotal,
		&s.Discount,
		&s.OtherCharges,
		&s.FinalTotal,
		&s.OpeningBalance,
		&s.TotalPayments,
		&s.ClosingBalance,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// SavePeriodStatement inserts a new period statement snapshot.
func (r *PgxStatementRepository) SavePeriodStatement(ctx context.Context, statement domain.PeriodStatement) error {
	query := `
		INSERT INTO period_statements (` + periodStatementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		statement.StatementID,
		statement.PartyID,
		statement.FromDate,
		statement.ToDate,
		statement.Subtotal,
		statement.Discount,
		statement.OtherCharges,
		statement.FinalTotal,
		statement.OpeningBalance,
		statement.TotalPayments,
		statement.ClosingBalance,
		statement.CreatedAt,
		statement.CreatedBy,
		statement.LastUpdatedAt,
		statement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save period statement %s: %w", statement.StatementID, err)
	}
	return nil
}

// UpdatePeriodStatement replaces the figures of an existing snapshot.
func (r *PgxStatementRepository) UpdatePeriodStatement(ctx context.Context, statement domain.PeriodStatement) error {
	query := `
		UPDATE period_statements
		SET from_date = $2, to_date = $3, subtotal = $4, discount = $5,
			other_charges = $6, final_total = $7, opening_balance = $8,
			total_payments = $9, closing_balance = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE statement_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		statement.StatementID,
		statement.FromDate,
		statement.ToDate,
		statement.Subtotal,
		statement.Discount,
		statement.OtherCharges,
		statement.FinalTotal,
		statement.OpeningBalance,
		statement.TotalPayments,
		statement.ClosingBalance,
		statement.LastUpdatedAt,
		statement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update period statement %s: %w", statement.StatementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPeriodStatementByID retrieves a period statement snapshot.
func (r *PgxStatementRepository) FindPeriodStatementByID(ctx context.Context, statementID string) (*domain.PeriodStatement, error) {
	query := `SELECT ` + periodStatementColumns + ` FROM period_statements WHERE statement_id = $1;`
	statement, err := scanPeriodStatement(r.Pool.QueryRow(ctx, query, statementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period statement %s: %w", statementID, err)
	}
	return &statement, nil
}

// ListPeriodStatementsByParty retrieves a party's snapshots, newest range first.
func (r *PgxStatementRepository) ListPeriodStatementsByParty(ctx context.Context, partyID string) ([]domain.PeriodStatement, error) {
	query := `SELECT ` + periodStatementColumns + ` FROM period_statements WHERE party_id = $1 ORDER BY from_date DESC, statement_id;`
	rows, err := r.Pool.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query period statements for party %s: %w", partyID, err)
	}
	defer rows.Close()

	statements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PeriodStatement, error) {
		return scanPeriodStatement(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan period statements: %w", err)
	}
	return statements, nil
}

// DeletePeriodStatement removes a snapshot.
func (r *PgxStatementRepository) DeletePeriodStatement(ctx context.Context, statementID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM period_statements WHERE statement_id = $1;`, statementID)
	if err != nil {
		return fmt.Errorf("failed to delete period statement %s: %w", statementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const vendorStatementColumns = `statement_id, vendor_id, from_date, to_date, vehicle_number, loader_name, load_weight, mt_weight, total_items, total_gross_weight, total_net_weight, total_amount, rent, rent_is_addition, other_expenses, other_expenses_is_addition, final_total, created_at, created_by, last_updated_at, last_updated_by`

func scanVendorStatement(row pgx.Row) (domain.VendorStatement, error) {
	var s domain.VendorStatement
	err := row.Scan(
		&s.StatementID,
		&s.VendorID,
		&s.FromDate,
		&s.ToDate,
		&s.VehicleNumber,
		&s.LoaderName,
		&s.Load,
		&s.MT,
		&s.TotalItems,
		&s.TotalGrossWeight,
		&s.TotalNetWeight,
		&s.TotalAmount,
		&s.Rent,
		&s.RentIsAddition,
		&s.OtherExpenses,
		&s.OtherExpensesIsAddition,
		&s.FinalTotal,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// SaveVendorStatement inserts a new vendor yield statement snapshot.
func (r *PgxStatementRepository) SaveVendorStatement(ctx context.Context, statement domain.VendorStatement) error {
	query := `
		INSERT INTO vendor_statements (` + vendorStatementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		statement.StatementID,
		statement.VendorID,
		statement.FromDate,
		statement.ToDate,
		statement.VehicleNumber,
		statement.LoaderName,
		statement.Load,
		statement.MT,
		statement.TotalItems,
		statement.TotalGrossWeight,
		statement.TotalNetWeight,
		statement.TotalAmount,
		statement.Rent,
		statement.RentIsAddition,
		statement.OtherExpenses,
		statement.OtherExpensesIsAddition,
		statement.FinalTotal,
		statement.CreatedAt,
		statement.CreatedBy,
		statement.LastUpdatedAt,
		statement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vendor statement %s: %w", statement.StatementID, err)
	}
	return nil
}

// UpdateVendorStatement replaces the figures of an existing snapshot.
func (r *PgxStatementRepository) UpdateVendorStatement(ctx context.Context, statement domain.VendorStatement) error {
	query := `
		UPDATE vendor_statements
		SET from_date = $2, to_date = $3, vehicle_number = $4, loader_name = $5,
			load_weight = $6, mt_weight = $7, total_items = $8,
			total_gross_weight = $9, total_net_weight = $10, total_amount = $11,
			rent = $12, rent_is_addition = $13, other_expenses = $14,
			other_expenses_is_addition = $15, final_total = $16,
			last_updated_at = $17, last_updated_by = $18
		WHERE statement_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		statement.StatementID,
		statement.FromDate,
		statement.ToDate,
		statement.VehicleNumber,
		statement.LoaderName,
		statement.Load,
		statement.MT,
		statement.TotalItems,
		statement.TotalGrossWeight,
		statement.TotalNetWeight,
		statement.TotalAmount,
		statement.Rent,
		statement.RentIsAddition,
		statement.OtherExpenses,
		statement.OtherExpensesIsAddition,
		statement.FinalTotal,
		statement.LastUpdatedAt,
		statement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor statement %s: %w", statement.StatementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindVendorStatementByID retrieves a vendor statement snapshot.
func (r *PgxStatementRepository) FindVendorStatementByID(ctx context.Context, statementID string) (*domain.VendorStatement, error) {
	query := `SELECT ` + vendorStatementColumns + ` FROM vendor_statements WHERE statement_id = $1;`
	statement, err := scanVendorStatement(r.Pool.QueryRow(ctx, query, statementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor statement %s: %w", statementID, err)
	}
	return &statement, nil
}

// ListVendorStatementsByVendor retrieves a vendor's snapshots, newest range first.
func (r *PgxStatementRepository) ListVendorStatementsByVendor(ctx context.Context, vendorID string) ([]domain.VendorStatement, error) {
	query := `SELECT ` + vendorStatementColumns + ` FROM vendor_statements WHERE vendor_id = $1 ORDER BY from_date DESC, statement_id;`
	rows, err := r.Pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor statements for %s: %w", vendorID, err)
	}
	defer rows.Close()

	statements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VendorStatement, error) {
		return scanVendorStatement(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vendor statements: %w", err)
	}
	return statements, nil
}

// DeleteVendorStatement removes a snapshot.
func (r *PgxStatementRepository) DeleteVendorStatement(ctx context.Context, statementID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendor_statements WHERE statement_id = $1;`, statementID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor statement %s: %w", statementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
