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

type PgxReservationRepository struct {
	BaseRepository
}

func newPgxReservationRepository(pool *pgxpool.Pool) portsrepo.ReservationRepositoryFacade {
	return &PgxReservationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

const reservationColumns = `reservation_id, tenant_id, client_id, client_name, crate_count,
		caution_rate, deposit_required, deposit_paid, payment_status, status, notes,
		created_at, created_by, last_updated_at, last_updated_by`

func scanReservation(row pgx.Row) (*models.Reservation, error) {
	var m models.Reservation
	err := row.Scan(
		&m.ReservationID,
		&m.TenantID,
		&m.ClientID,
		&m.ClientName,
		&m.CrateCount,
		&m.CautionRate,
		&m.DepositRequired,
		&m.DepositPaid,
		&m.PaymentStatus,
		&m.Status,
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

func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	m := mapping.ToModelReservation(reservation)
	query := `
        INSERT INTO reservations (reservation_id, tenant_id, client_id, client_name, crate_count,
            caution_rate, deposit_required, deposit_paid, payment_status, status, notes,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ReservationID, m.TenantID, m.ClientID, m.ClientName, m.CrateCount,
		m.CautionRate, m.DepositRequired, m.DepositPaid, m.PaymentStatus, m.Status, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save reservation: %w", err)
	}
	return nil
}

func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, tenantID, reservationID string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE tenant_id = $1 AND reservation_id = $2;`
	m, err := scanReservation(r.Pool.QueryRow(ctx, query, tenantID, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reservation by ID %s: %w", reservationID, err)
	}
	res := mapping.ToDomainReservation(*m)
	return &res, nil
}

func (r *PgxReservationRepository) FindReservations(ctx context.Context, tenantID string, status domain.ReservationStatus, limit, offset int) ([]domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4;
    `
	rows, err := r.Pool.Query(ctx, query, tenantID, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	ms := []models.Reservation{}
	for rows.Next() {
		m, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", rows.Err())
	}
	return mapping.ToDomainReservationSlice(ms), nil
}

func (r *PgxReservationRepository) UpdateReservationStatus(ctx context.Context, tenantID, reservationID string, status domain.ReservationStatus, updatedBy string) error {
	query := `
        UPDATE reservations
        SET status = $1, last_updated_at = $2, last_updated_by = $3
        WHERE tenant_id = $4 AND reservation_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), time.Now(), updatedBy, tenantID, reservationID)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyDepositPayment increments deposit_paid and derives the payment status
// inside the same UPDATE, so concurrent payments never lose an increment.
func (r *PgxReservationRepository) ApplyDepositPayment(ctx context.Context, tenantID, reservationID string, amount decimal.Decimal, updatedBy string) (*domain.Reservation, error) {
	query := `
        UPDATE reservations
        SET deposit_paid = deposit_paid + $1,
            payment_status = CASE
                WHEN deposit_paid + $1 >= deposit_required THEN 'PAID'
                WHEN deposit_paid + $1 > 0 THEN 'PARTIAL'
                ELSE 'EMPTY'
            END,
            last_updated_at = $2, last_updated_by = $3
        WHERE tenant_id = $4 AND reservation_id = $5
        RETURNING ` + reservationColumns + `;
    `
	m, err := scanReservation(r.Pool.QueryRow(ctx, query, amount, time.Now(), updatedBy, tenantID, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to apply deposit payment: %w", err)
	}
	res := mapping.ToDomainReservation(*m)
	return &res, nil
}
