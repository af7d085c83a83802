package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
)

// PgxPurchaseRepository reads the vendor-side purchase stream. Purchases
// are not a table of their own: they are invoice line items attributed to
// a vendor, joined with the invoice date.
type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase reads.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseReader {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PurchaseReader = (*PgxPurchaseRepository)(nil)

// ListPurchasesByVendor retrieves a vendor's purchase records, optionally
// bounded to from <= purchase_date <= to (inclusive).
func (r *PgxPurchaseRepository) ListPurchasesByVendor(ctx context.Context, vendorID string, from, to *time.Time) ([]domain.PurchaseRecord, error) {
	query := `
		SELECT li.line_item_id, li.invoice_id, li.vendor_id, i.invoice_date,
			li.product_id, li.product_name, li.quantity, li.gross_weight,
			li.box_weight, li.benches_weight, li.net_weight, li.total
		FROM invoice_line_items li
		JOIN invoices i ON i.invoice_id = li.invoice_id
		WHERE li.vendor_id = $1`
	args := []any{vendorID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND i.invoice_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND i.invoice_date <= $%d", len(args))
	}
	query += " ORDER BY i.invoice_date, li.line_item_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases for vendor %s: %w", vendorID, err)
	}
	defer rows.Close()

	purchases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PurchaseRecord, error) {
		var p domain.PurchaseRecord
		err := row.Scan(
			&p.LineItemID,
			&p.InvoiceID,
			&p.VendorID,
			&p.PurchaseDate,
			&p.ProductID,
			&p.ProductName,
			&p.Quantity,
			&p.GrossWeight,
			&p.BoxWeight,
			&p.BenchesWeight,
			&p.NetWeight,
			&p.Total,
		)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan purchases: %w", err)
	}
	return purchases, nil
}
