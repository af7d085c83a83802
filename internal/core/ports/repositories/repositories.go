package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PartyRepo      PartyRepositoryFacade
	InvoiceRepo    InvoiceRepositoryFacade
	PaymentRepo    PaymentRepositoryFacade
	AdjustmentRepo AdjustmentRepositoryFacade
	PurchaseRepo   PurchaseReader
	StatementRepo  StatementRepositoryFacade
}
