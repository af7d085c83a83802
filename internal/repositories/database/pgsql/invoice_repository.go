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

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, party_id, invoice_date, subtotal, discount, other_charges, total, received_amount, status, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.PartyID,
		&inv.InvoiceDate,
		&inv.Subtotal,
		&inv.Discount,
		&inv.OtherCharges,
		&inv.Total,
		&inv.ReceivedAmount,
		&inv.Status,
		&inv.CreatedAt,
		&inv.CreatedBy,
		&inv.LastUpdatedAt,
		&inv.LastUpdatedBy,
	)
	return inv, err
}

// SaveInvoice persists the invoice header and all its line items atomically.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	headerQuery := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, headerQuery,
		invoice.InvoiceID,
		invoice.PartyID,
		invoice.InvoiceDate,
		invoice.Subtotal,
		invoice.Discount,
		invoice.OtherCharges,
		invoice.Total,
		invoice.ReceivedAmount,
		invoice.Status,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice %s: %w", invoice.InvoiceID, err)
	}

	if err := insertLineItems(ctx, tx, invoice); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateInvoice replaces the invoice header and recreates its line items
// wholesale within one transaction.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	headerQuery := `
		UPDATE invoices
		SET invoice_date = $2, subtotal = $3, discount = $4, other_charges = $5,
			total = $6, received_amount = $7, status = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE invoice_id = $1;
	`
	tag, err := tx.Exec(ctx, headerQuery,
		invoice.InvoiceID,
		invoice.InvoiceDate,
		invoice.Subtotal,
		invoice.Discount,
		invoice.OtherCharges,
		invoice.Total,
		invoice.ReceivedAmount,
		invoice.Status,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_line_items WHERE invoice_id = $1;`, invoice.InvoiceID); err != nil {
		return fmt.Errorf("failed to clear line items for invoice %s: %w", invoice.InvoiceID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM loose_line_items WHERE invoice_id = $1;`, invoice.InvoiceID); err != nil {
		return fmt.Errorf("failed to clear loose items for invoice %s: %w", invoice.InvoiceID, err)
	}

	if err := insertLineItems(ctx, tx, invoice); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertLineItems(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	itemQuery := `
		INSERT INTO invoice_line_items (line_item_id, invoice_id, vendor_id, product_id, product_name, quantity, gross_weight, box_weight, benches_weight, net_weight, rate, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, item := range invoice.Items {
		_, err := tx.Exec(ctx, itemQuery,
			item.LineItemID,
			item.InvoiceID,
			item.VendorID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.GrossWeight,
			item.BoxWeight,
			item.BenchesWeight,
			item.NetWeight,
			item.Rate,
			item.Total,
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item %s: %w", item.LineItemID, err)
		}
	}

	looseQuery := `
		INSERT INTO loose_line_items (line_item_id, invoice_id, vendor_id, product_name, net_weight, weight_unit, rate, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, item := range invoice.LooseItems {
		_, err := tx.Exec(ctx, looseQuery,
			item.LineItemID,
			item.InvoiceID,
			item.VendorID,
			item.ProductName,
			item.NetWeight,
			item.WeightUnit,
			item.Rate,
			item.Total,
		)
		if err != nil {
			return fmt.Errorf("failed to insert loose item %s: %w", item.LineItemID, err)
		}
	}
	return nil
}

// FindInvoiceByID retrieves an invoice with its nested line items.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	invoice, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	invoices := []domain.Invoice{invoice}
	if err := r.attachItems(ctx, invoices); err != nil {
		return nil, err
	}
	return &invoices[0], nil
}

// ListInvoicesByParty retrieves a party's invoices with nested line items,
// optionally bounded to from <= invoice_date <= to (inclusive).
func (r *PgxInvoiceRepository) ListInvoicesByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE party_id = $1`
	args := []any{partyID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND invoice_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND invoice_date <= $%d", len(args))
	}
	query += " ORDER BY invoice_date, invoice_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices for party %s: %w", partyID, err)
	}
	defer rows.Close()

	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}

	if err := r.attachItems(ctx, invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// CountInvoicesByStatus counts invoices in the given settlement states.
func (r *PgxInvoiceRepository) CountInvoicesByStatus(ctx context.Context, statuses ...domain.InvoiceStatus) (int, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE status = ANY($1);`, values).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices by status: %w", err)
	}
	return count, nil
}

// DeleteInvoice removes the invoice; line items cascade.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// attachItems loads line items and loose items for the given invoices in
// two batch queries.
func (r *PgxInvoiceRepository) attachItems(ctx context.Context, invoices []domain.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}

	index := make(map[string]*domain.Invoice, len(invoices))
	ids := make([]string, len(invoices))
	for i := range invoices {
		index[invoices[i].InvoiceID] = &invoices[i]
		ids[i] = invoices[i].InvoiceID
	}

	itemQuery := `
		SELECT line_item_id, invoice_id, vendor_id, product_id, product_name, quantity, gross_weight, box_weight, benches_weight, net_weight, rate, total
		FROM invoice_line_items
		WHERE invoice_id = ANY($1)
		ORDER BY line_item_id;
	`
	itemRows, err := r.Pool.Query(ctx, itemQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to query invoice line items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.InvoiceLineItem
		if err := itemRows.Scan(
			&item.LineItemID,
			&item.InvoiceID,
			&item.VendorID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.GrossWeight,
			&item.BoxWeight,
			&item.BenchesWeight,
			&item.NetWeight,
			&item.Rate,
			&item.Total,
		); err != nil {
			return fmt.Errorf("failed to scan invoice line item: %w", err)
		}
		if inv, ok := index[item.InvoiceID]; ok {
			inv.Items = append(inv.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate invoice line items: %w", err)
	}

	looseQuery := `
		SELECT line_item_id, invoice_id, vendor_id, product_name, net_weight, weight_unit, rate, total
		FROM loose_line_items
		WHERE invoice_id = ANY($1)
		ORDER BY line_item_id;
	`
	looseRows, err := r.Pool.Query(ctx, looseQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to query loose line items: %w", err)
	}
	defer looseRows.Close()

	for looseRows.Next() {
		var item domain.LooseLineItem
		if err := looseRows.Scan(
			&item.LineItemID,
			&item.InvoiceID,
			&item.VendorID,
			&item.ProductName,
			&item.NetWeight,
			&item.WeightUnit,
			&item.Rate,
			&item.Total,
		); err != nil {
			return fmt.Errorf("failed to scan loose line item: %w", err)
		}
		if inv, ok := index[item.InvoiceID]; ok {
			inv.LooseItems = append(inv.LooseItems, item)
		}
	}
	if err := looseRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate loose line items: %w", err)
	}

	return nil
}
