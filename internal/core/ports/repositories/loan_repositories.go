package repositories

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanRepositoryFacade defines persistence operations for empty-crate loans.
type LoanRepositoryFacade interface {
	// SaveLoan persists a new loan ticket.
	SaveLoan(ctx context.Context, loan domain.CrateLoan) error

	// FindLoanByID retrieves a loan scoped to a tenant.
	FindLoanByID(ctx context.Context, tenantID, loanID string) (*domain.CrateLoan, error)

	// FindLoans retrieves a paginated list, optionally filtered by status.
	FindLoans(ctx context.Context, tenantID string, status domain.LoanStatus, limit, offset int) ([]domain.CrateLoan, error)

	// ApplyDepositPayment atomically adds to deposit_paid and recomputes the
	// payment status in a single statement, returning the updated row.
	ApplyDepositPayment(ctx context.Context, tenantID, loanID string, amount decimal.Decimal, updatedBy string) (*domain.CrateLoan, error)

	// MarkLoanReturned transitions an OPEN loan to RETURNED. The statement
	// only matches fully paid loans, so a racing payment check cannot slip
	// an unpaid return through.
	MarkLoanReturned(ctx context.Context, tenantID, loanID string, updatedBy string) error
}
