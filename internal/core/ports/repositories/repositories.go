package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	TenantRepo      TenantRepositoryFacade
	ClientRepo      ClientRepositoryFacade
	ReservationRepo ReservationRepositoryFacade
	LoanRepo        LoanRepositoryFacade
	ReceptionRepo   ReceptionRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	CounterRepo     CounterRepositoryFacade
	CashRepo        CashRepositoryFacade
	AuditRepo       AuditRepositoryFacade
}
