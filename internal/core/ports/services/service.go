package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers are wired against.
type ServiceContainer struct {
	User        UserSvcFacade
	Tenant      TenantSvcFacade
	Client      ClientSvcFacade
	Reservation ReservationSvcFacade
	Loan        LoanSvcFacade
	Reception   ReceptionSvcFacade
	Invoice     InvoiceSvcFacade
	Cash        CashSvcFacade
	Audit       AuditSvcFacade

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
	ReceiptStorage     ReceiptStorageSvc
}
