package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/frigosaas/frigo-backend/internal/utils/numbering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// loanService implements the LoanSvcFacade interface
type loanService struct {
	BaseService
	loanRepo    portsrepo.LoanRepositoryFacade
	tenantRepo  portsrepo.TenantReader
	clientRepo  portsrepo.ClientRepositoryFacade
	counterRepo portsrepo.CounterRepositoryFacade
	audit       portssvc.AuditSvcFacade
}

// NewLoanService creates a new loan service with the provided dependencies
func NewLoanService(
	loanRepo portsrepo.LoanRepositoryFacade,
	tenantRepo portsrepo.TenantReader,
	clientRepo portsrepo.ClientRepositoryFacade,
	counterRepo portsrepo.CounterRepositoryFacade,
	authorizer portssvc.TenantAuthorizerSvc,
	audit portssvc.AuditSvcFacade,
) portssvc.LoanSvcFacade {
	return &loanService{
		BaseService: BaseService{TenantAuthorizer: authorizer},
		loanRepo:    loanRepo,
		tenantRepo:  tenantRepo,
		clientRepo:  clientRepo,
		counterRepo: counterRepo,
		audit:       audit,
	}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// loanCounterKey scopes ticket numbering per year so sequences restart each
// season.
func loanCounterKey(year int) string {
	return fmt.Sprintf("%s-%d", numbering.LoanPrefix, year)
}

// CreateLoan issues a ticketed crate loan. The deposit is crates times the
// tenant's caution rate, and the ticket number comes from the tenant's
// atomic counter.
func (s *loanService) CreateLoan(ctx context.Context, tenantID string, req dto.CreateLoanRequest, creatorUserID string) (*domain.CrateLoan, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleManager); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, tenantID, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(400, "client not found", apperrors.ErrValidation)
		}
		return nil, err
	}

	now := time.Now()
	seq, err := s.counterRepo.NextSequence(ctx, tenantID, loanCounterKey(now.Year()))
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate loan ticket number",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	loan := domain.CrateLoan{
		LoanID:        uuid.NewString(),
		TicketNumber:  numbering.FormatShort(numbering.LoanPrefix, now.Year(), seq),
		TenantID:      tenantID,
		ClientID:      client.ClientID,
		ClientName:    client.Name,
		CrateCount:    req.CrateCount,
		CautionRate:   tenant.CautionRate,
		DepositAmount: domain.RequiredDeposit(req.CrateCount, tenant.CautionRate),
		DepositPaid:   decimal.Zero,
		PaymentStatus: domain.PaymentEmpty,
		Status:        domain.LoanOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		s.LogError(ctx, err, "Failed to save loan",
			slog.String("tenant_id", tenantID),
			slog.String("ticket_number", loan.TicketNumber))
		return nil, err
	}

	s.audit.Record(ctx, tenantID, creatorUserID, "CREATE", "loan", loan.LoanID, loan.TicketNumber)
	s.LogInfo(ctx, "Crate loan issued",
		slog.String("loan_id", loan.LoanID),
		slog.String("ticket_number", loan.TicketNumber),
		slog.Int("crate_count", req.CrateCount))
	return &loan, nil
}

func (s *loanService) GetLoanByID(ctx context.Context, tenantID, loanID, requestingUserID string) (*domain.CrateLoan, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	loan, err := s.loanRepo.FindLoanByID(ctx, tenantID, loanID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find loan",
				slog.String("loan_id", loanID))
		}
		return nil, err
	}
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context, tenantID string, status domain.LoanStatus, limit, offset int, requestingUserID string) ([]domain.CrateLoan, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	loans, err := s.loanRepo.FindLoans(ctx, tenantID, status, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if loans == nil {
		return []domain.CrateLoan{}, nil
	}
	return loans, nil
}

func (s *loanService) RecordDepositPayment(ctx context.Context, tenantID, loanID string, amount decimal.Decimal, requestingUserID string) (*domain.CrateLoan, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleManager); err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewAppError(400, "payment amount must be positive", apperrors.ErrValidation)
	}

	loan, err := s.loanRepo.ApplyDepositPayment(ctx, tenantID, loanID, amount, requestingUserID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to apply loan deposit payment",
				slog.String("loan_id", loanID))
		}
		return nil, err
	}

	s.audit.Record(ctx, tenantID, requestingUserID, "PAYMENT", "loan", loanID, amount.String())
	s.LogInfo(ctx, "Loan deposit payment recorded",
		slog.String("loan_id", loanID),
		slog.String("amount", amount.String()),
		slog.String("payment_status", string(loan.PaymentStatus)))
	return loan, nil
}

// ReturnLoan closes an OPEN loan. The repository statement matches only
// fully paid loans, so the caution guard holds even under concurrent
// payments; an outstanding balance yields ErrCautionOutstanding.
func (s *loanService) ReturnLoan(ctx context.Context, tenantID, loanID, requestingUserID string) (*domain.CrateLoan, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleManager); err != nil {
		return nil, err
	}

	if err := s.loanRepo.MarkLoanReturned(ctx, tenantID, loanID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrCautionOutstanding) {
			s.LogInfo(ctx, "Loan return rejected, caution outstanding",
				slog.String("loan_id", loanID))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to mark loan returned",
				slog.String("loan_id", loanID))
		}
		return nil, err
	}

	loan, err := s.loanRepo.FindLoanByID(ctx, tenantID, loanID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, tenantID, requestingUserID, "RETURN", "loan", loanID, loan.TicketNumber)
	s.LogInfo(ctx, "Crate loan returned",
		slog.String("loan_id", loanID),
		slog.String("ticket_number", loan.TicketNumber))
	return loan, nil
}
