package services

import (
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// overviewCache and receiptStorage may be nil when the backing infrastructure
// is not configured.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	overviewCache portssvc.OverviewCache,
	receiptStorage portssvc.ReceiptStorageSvc,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Tenant service first since the others authorize through it.
	container.Tenant = NewTenantService(repos.TenantRepo)
	authorizer := container.Tenant.(portssvc.TenantAuthorizerSvc)

	container.Audit = NewAuditService(repos.AuditRepo, authorizer)
	container.User = NewUserService(repos.UserRepo)
	container.Client = NewClientService(repos.ClientRepo, authorizer, container.Audit)
	container.Reservation = NewReservationService(repos.ReservationRepo, repos.TenantRepo, repos.ClientRepo, authorizer, container.Audit)
	container.Loan = NewLoanService(repos.LoanRepo, repos.TenantRepo, repos.ClientRepo, repos.CounterRepo, authorizer, container.Audit)
	container.Reception = NewReceptionService(repos.ReceptionRepo, repos.ClientRepo, repos.CounterRepo, authorizer, container.Audit)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo, repos.CounterRepo, authorizer, container.Audit)
	container.Cash = NewCashService(repos.CashRepo, repos.TenantRepo, overviewCache, authorizer, container.Audit)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.ReceiptStorage = receiptStorage

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.TenantSvcFacade      = (*tenantService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.ClientSvcFacade      = (*clientService)(nil)
	_ portssvc.ReservationSvcFacade = (*reservationService)(nil)
	_ portssvc.LoanSvcFacade        = (*loanService)(nil)
	_ portssvc.ReceptionSvcFacade   = (*receptionService)(nil)
	_ portssvc.InvoiceSvcFacade     = (*invoiceService)(nil)
	_ portssvc.CashSvcFacade        = (*cashService)(nil)
	_ portssvc.AuditSvcFacade       = (*auditService)(nil)
)
