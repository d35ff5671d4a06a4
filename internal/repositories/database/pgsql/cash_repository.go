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

type PgxCashRepository struct {
	BaseRepository
}

func newPgxCashRepository(pool *pgxpool.Pool) portsrepo.CashRepositoryFacade {
	return &PgxCashRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashRepositoryFacade = (*PgxCashRepository)(nil)

const movementColumns = `movement_id, tenant_id, direction, reason, client_id, invoice_id,
		amount, method, reference, receipt_url, closure_id, is_closed,
		created_at, created_by, last_updated_at, last_updated_by`

const closureColumns = `closure_id, tenant_id, business_date, opening_cash, total_in, total_out,
		expected_cash, counted_cash, variance, notes,
		created_at, created_by, last_updated_at, last_updated_by`

func scanMovement(row pgx.Row) (*models.CashMovement, error) {
	var m models.CashMovement
	err := row.Scan(
		&m.MovementID,
		&m.TenantID,
		&m.Direction,
		&m.Reason,
		&m.ClientID,
		&m.InvoiceID,
		&m.Amount,
		&m.Method,
		&m.Reference,
		&m.ReceiptURL,
		&m.ClosureID,
		&m.IsClosed,
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

func scanClosure(row pgx.Row) (*models.DayClosure, error) {
	var m models.DayClosure
	err := row.Scan(
		&m.ClosureID,
		&m.TenantID,
		&m.BusinessDate,
		&m.OpeningCash,
		&m.TotalIn,
		&m.TotalOut,
		&m.ExpectedCash,
		&m.CountedCash,
		&m.Variance,
		&m.Notes,
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

// dayBounds returns the half-open [start, end) window of a business date.
func dayBounds(businessDate time.Time) (time.Time, time.Time) {
	start := time.Date(businessDate.Year(), businessDate.Month(), businessDate.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// SaveMovement inserts a movement unless its business day is already closed.
// The closure check happens inside the INSERT itself, so a closure committing
// between a separate read and the write cannot slip a movement in.
func (r *PgxCashRepository) SaveMovement(ctx context.Context, movement domain.CashMovement) error {
	m := mapping.ToModelCashMovement(movement)
	businessDate, _ := dayBounds(movement.CreatedAt.UTC())
	query := `
        INSERT INTO cash_movements (movement_id, tenant_id, direction, reason, client_id, invoice_id,
            amount, method, reference, receipt_url, closure_id, is_closed,
            created_at, created_by, last_updated_at, last_updated_by)
        SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
        WHERE NOT EXISTS (
            SELECT 1 FROM day_closures WHERE tenant_id = $2 AND business_date = $17
        );
    `
	ct, err := r.Pool.Exec(ctx, query,
		m.MovementID, m.TenantID, m.Direction, m.Reason, m.ClientID, m.InvoiceID,
		m.Amount, m.Method, m.Reference, m.ReceiptURL, m.ClosureID, m.IsClosed,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		businessDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save cash movement: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("business day already closed: %w", apperrors.ErrDayClosed)
	}
	return nil
}

func (r *PgxCashRepository) FindMovementByID(ctx context.Context, tenantID, movementID string) (*domain.CashMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM cash_movements WHERE tenant_id = $1 AND movement_id = $2;`
	m, err := scanMovement(r.Pool.QueryRow(ctx, query, tenantID, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash movement by ID %s: %w", movementID, err)
	}
	mv := mapping.ToDomainCashMovement(*m)
	return &mv, nil
}

func (r *PgxCashRepository) FindMovementsByDay(ctx context.Context, tenantID string, businessDate time.Time, before *portsrepo.MovementCursor, limit int) ([]domain.CashMovement, error) {
	start, end := dayBounds(businessDate)
	// The row comparison tie-breaks on movement_id, so movements sharing the
	// page-boundary timestamp are not skipped. The default cursor sits past
	// the day window and excludes nothing.
	cursorTime, cursorID := end, ""
	if before != nil {
		cursorTime, cursorID = before.CreatedAt, before.MovementID
	}
	query := `
        SELECT ` + movementColumns + `
        FROM cash_movements
        WHERE tenant_id = $1 AND created_at >= $2 AND created_at < $3
          AND (created_at, movement_id) < ($4, $5)
        ORDER BY created_at DESC, movement_id DESC
        LIMIT $6;
    `
	rows, err := r.Pool.Query(ctx, query, tenantID, start, end, cursorTime, cursorID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash movements: %w", err)
	}
	defer rows.Close()

	ms := []models.CashMovement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash movement row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cash movement rows: %w", rows.Err())
	}
	return mapping.ToDomainCashMovementSlice(ms), nil
}

func (r *PgxCashRepository) SumMovementsByDay(ctx context.Context, tenantID string, businessDate time.Time) (portsrepo.DayTotals, error) {
	start, end := dayBounds(businessDate)
	query := `
        SELECT
            COALESCE(SUM(amount) FILTER (WHERE direction = 'IN'), 0),
            COALESCE(SUM(amount) FILTER (WHERE direction = 'OUT'), 0)
        FROM cash_movements
        WHERE tenant_id = $1 AND created_at >= $2 AND created_at < $3;
    `
	var totalIn, totalOut decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, tenantID, start, end).Scan(&totalIn, &totalOut); err != nil {
		return portsrepo.DayTotals{}, fmt.Errorf("failed to sum cash movements: %w", err)
	}
	return portsrepo.DayTotals{TotalIn: totalIn, TotalOut: totalOut}, nil
}

// CloseDay inserts the closure row, locks the day's movements and records the
// totals of exactly the locked set, all in one transaction. The closure row
// goes in first (with zero totals) so a duplicate closure fails immediately
// and the movements' closure_id reference resolves; the stamp's RETURNING
// clause then makes the recorded totals equal the locked movements by
// construction. A movement committing after the stamp is rejected by
// SaveMovement's closure guard once this transaction is visible.
func (r *PgxCashRepository) CloseDay(ctx context.Context, closure domain.DayClosure) (*domain.DayClosure, error) {
	start, end := dayBounds(closure.BusinessDate)
	m := mapping.ToModelDayClosure(closure)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insertClosure := `
        INSERT INTO day_closures (closure_id, tenant_id, business_date, opening_cash, total_in, total_out,
            expected_cash, counted_cash, variance, notes,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err = tx.Exec(ctx, insertClosure,
		m.ClosureID, m.TenantID, m.BusinessDate, m.OpeningCash, m.TotalIn, m.TotalOut,
		m.ExpectedCash, m.CountedCash, m.Variance, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("business day already closed: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert day closure: %w", err)
	}

	lockMovements := `
        UPDATE cash_movements
        SET is_closed = TRUE, closure_id = $1, last_updated_at = $2, last_updated_by = $3
        WHERE tenant_id = $4 AND created_at >= $5 AND created_at < $6 AND is_closed = FALSE
        RETURNING direction, amount;
    `
	rows, err := tx.Query(ctx, lockMovements,
		closure.ClosureID, closure.LastUpdatedAt, closure.LastUpdatedBy, closure.TenantID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to lock day's movements: %w", err)
	}

	totalIn, totalOut := decimal.Zero, decimal.Zero
	for rows.Next() {
		var direction string
		var amount decimal.Decimal
		if err := rows.Scan(&direction, &amount); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan locked movement: %w", err)
		}
		if direction == string(domain.MovementIn) {
			totalIn = totalIn.Add(amount)
		} else {
			totalOut = totalOut.Add(amount)
		}
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating locked movements: %w", rows.Err())
	}

	closure.Reconcile(totalIn, totalOut)

	recordTotals := `
        UPDATE day_closures
        SET total_in = $1, total_out = $2, expected_cash = $3, variance = $4
        WHERE closure_id = $5;
    `
	_, err = tx.Exec(ctx, recordTotals,
		closure.TotalIn, closure.TotalOut, closure.ExpectedCash, closure.Variance, closure.ClosureID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record day closure totals: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &closure, nil
}

func (r *PgxCashRepository) FindClosure(ctx context.Context, tenantID string, businessDate time.Time) (*domain.DayClosure, error) {
	start, _ := dayBounds(businessDate)
	query := `SELECT ` + closureColumns + ` FROM day_closures WHERE tenant_id = $1 AND business_date = $2;`
	m, err := scanClosure(r.Pool.QueryRow(ctx, query, tenantID, start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find day closure: %w", err)
	}
	closure := mapping.ToDomainDayClosure(*m)
	return &closure, nil
}

func (r *PgxCashRepository) FindClosures(ctx context.Context, tenantID string, limit, offset int) ([]domain.DayClosure, error) {
	query := `
        SELECT ` + closureColumns + `
        FROM day_closures
        WHERE tenant_id = $1
        ORDER BY business_date DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query day closures: %w", err)
	}
	defer rows.Close()

	ms := []models.DayClosure{}
	for rows.Next() {
		m, err := scanClosure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day closure row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating day closure rows: %w", rows.Err())
	}
	return mapping.ToDomainDayClosureSlice(ms), nil
}
