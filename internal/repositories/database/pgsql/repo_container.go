package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:      newPgxPartyRepository(dbPool),
		InvoiceRepo:    newPgxInvoiceRepository(dbPool),
		PaymentRepo:    newPgxPaymentRepository(dbPool),
		AdjustmentRepo: newPgxAdjustmentRepository(dbPool),
		PurchaseRepo:   newPgxPurchaseRepository(dbPool),
		StatementRepo:  newPgxStatementRepository(dbPool),
	}
}
