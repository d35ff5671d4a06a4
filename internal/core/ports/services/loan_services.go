package services

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LoanSvcFacade manages empty-crate loan tickets.
type LoanSvcFacade interface {
	// CreateLoan issues a ticketed loan; deposit = crates x caution rate.
	CreateLoan(ctx context.Context, tenantID string, req dto.CreateLoanRequest, creatorUserID string) (*domain.CrateLoan, error)

	// GetLoanByID retrieves one loan.
	GetLoanByID(ctx context.Context, tenantID, loanID, requestingUserID string) (*domain.CrateLoan, error)

	// ListLoans retrieves a paginated, optionally status-filtered list.
	ListLoans(ctx context.Context, tenantID string, status domain.LoanStatus, limit, offset int, requestingUserID string) ([]domain.CrateLoan, error)

	// RecordDepositPayment applies a caution payment to the loan.
	RecordDepositPayment(ctx context.Context, tenantID, loanID string, amount decimal.Decimal, requestingUserID string) (*domain.CrateLoan, error)

	// ReturnLoan closes an OPEN loan. Returns apperrors.ErrCautionOutstanding
	// while any caution remains unpaid.
	ReturnLoan(ctx context.Context, tenantID, loanID, requestingUserID string) (*domain.CrateLoan, error)
}
