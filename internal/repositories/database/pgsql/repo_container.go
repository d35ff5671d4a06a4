package pgsql

import (
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		TenantRepo:      newPgxTenantRepository(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
		ReservationRepo: newPgxReservationRepository(dbPool),
		LoanRepo:        newPgxLoanRepository(dbPool),
		ReceptionRepo:   newPgxReceptionRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		CounterRepo:     newPgxCounterRepository(dbPool),
		CashRepo:        newPgxCashRepository(dbPool),
		AuditRepo:       newPgxAuditRepository(dbPool),
	}
}
