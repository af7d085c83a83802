package services

import (
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg)

	container.Party = NewPartyService(
		repos.PartyRepo,
		repos.InvoiceRepo,
		repos.PaymentRepo,
		repos.AdjustmentRepo,
		repos.PurchaseRepo,
	)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.PartyRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.PartyRepo, repos.InvoiceRepo)
	container.Adjustment = NewAdjustmentService(repos.AdjustmentRepo, repos.PartyRepo)
	container.Statement = NewStatementService(
		repos.StatementRepo,
		repos.PartyRepo,
		repos.InvoiceRepo,
		repos.PaymentRepo,
		repos.AdjustmentRepo,
		repos.PurchaseRepo,
	)

	// Reporting rides on the party service so dashboard figures share the
	// exact balance computation used everywhere else.
	container.Reporting = NewReportingService(container.Party, repos.InvoiceRepo)

	return container
}
