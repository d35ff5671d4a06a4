package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	"github.com/frigosaas/frigo-backend/internal/models"
	"github.com/frigosaas/frigo-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLoanRepository struct {
	BaseRepository
}

func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

const loanColumns = `loan_id, ticket_number, tenant_id, client_id, client_name, crate_count,
		caution_rate, deposit_amount, deposit_paid, payment_status, status,
		created_at, created_by, last_updated_at, last_updated_by`

func scanLoan(row pgx.Row) (*models.CrateLoan, error) {
	var m models.CrateLoan
	err := row.Scan(
		&m.LoanID,
		&m.TicketNumber,
		&m.TenantID,
		&m.ClientID,
		&m.ClientName,
		&m.CrateCount,
		&m.CautionRate,
		&m.DepositAmount,
		&m.DepositPaid,
		&m.PaymentStatus,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.CrateLoan) error {
	m := mapping.ToModelCrateLoan(loan)
	query := `
        INSERT INTO crate_loans (loan_id, ticket_number, tenant_id, client_id, client_name, crate_count,
            caution_rate, deposit_amount, deposit_paid, payment_status, status,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.LoanID, m.TicketNumber, m.TenantID, m.ClientID, m.ClientName, m.CrateCount,
		m.CautionRate, m.DepositAmount, m.DepositPaid, m.PaymentStatus, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("loan ticket number already used: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save loan: %w", err)
	}
	return nil
}

func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, tenantID, loanID string) (*domain.CrateLoan, error) {
	query := `SELECT ` + loanColumns + ` FROM crate_loans WHERE tenant_id = $1 AND loan_id = $2;`
	m, err := scanLoan(r.Pool.QueryRow(ctx, query, tenantID, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan by ID %s: %w", loanID, err)
	}
	loan := mapping.ToDomainCrateLoan(*m)
	return &loan, nil
}

func (r *PgxLoanRepository) FindLoans(ctx context.Context, tenantID string, status domain.LoanStatus, limit, offset int) ([]domain.CrateLoan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM crate_loans
        WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4;
    `
	rows, err := r.Pool.Query(ctx, query, tenantID, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	ms := []models.CrateLoan{}
	for rows.Next() {
		m, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", rows.Err())
	}
	return mapping.ToDomainCrateLoanSlice(ms), nil
}

func (r *PgxLoanRepository) ApplyDepositPayment(ctx context.Context, tenantID, loanID string, amount decimal.Decimal, updatedBy string) (*domain.CrateLoan, error) {
	query := `
        UPDATE crate_loans
        SET deposit_paid = deposit_paid + $1,
            payment_status = CASE
                WHEN deposit_paid + $1 >= deposit_amount THEN 'PAID'
                WHEN deposit_paid + $1 > 0 THEN 'PARTIAL'
                ELSE 'EMPTY'
            END,
            last_updated_at = $2, last_updated_by = $3
        WHERE tenant_id = $4 AND loan_id = $5
        RETURNING ` + loanColumns + `;
    `
	m, err := scanLoan(r.Pool.QueryRow(ctx, query, amount, time.Now(), updatedBy, tenantID, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to apply loan deposit payment: %w", err)
	}
	loan := mapping.ToDomainCrateLoan(*m)
	return &loan, nil
}

// MarkLoanReturned only matches loans whose caution is fully settled. A loan
// that exists but has an outstanding balance yields ErrCautionOutstanding
// rather than ErrNotFound.
func (r *PgxLoanRepository) MarkLoanReturned(ctx context.Context, tenantID, loanID string, updatedBy string) error {
	query := `
        UPDATE crate_loans
        SET status = $1, last_updated_at = $2, last_updated_by = $3
        WHERE tenant_id = $4 AND loan_id = $5 AND status = $6
          AND deposit_paid >= deposit_amount;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		string(domain.LoanReturned), time.Now(), updatedBy,
		tenantID, loanID, string(domain.LoanOpen),
	)
	if err != nil {
		return fmt.Errorf("failed to mark loan returned: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		loan, findErr := r.FindLoanByID(ctx, tenantID, loanID)
		if findErr != nil {
			return findErr
		}
		if loan.Status == domain.LoanOpen && loan.DepositRemaining().GreaterThan(decimal.Zero) {
			return apperrors.ErrCautionOutstanding
		}
		return apperrors.ErrNotFound
	}
	return nil
}
