package repositories

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReservationRepositoryFacade defines persistence operations for reservations.
type ReservationRepositoryFacade interface {
	// SaveReservation persists a new reservation.
	SaveReservation(ctx context.Context, reservation domain.Reservation) error

	// FindReservationByID retrieves a reservation scoped to a tenant.
	FindReservationByID(ctx context.Context, tenantID, reservationID string) (*domain.Reservation, error)

	// FindReservations retrieves a paginated list, optionally filtered by status.
	FindReservations(ctx context.Context, tenantID string, status domain.ReservationStatus, limit, offset int) ([]domain.Reservation, error)

	// UpdateReservationStatus transitions a reservation's lifecycle status.
	UpdateReservationStatus(ctx context.Context, tenantID, reservationID string, status domain.ReservationStatus, updatedBy string) error

	// ApplyDepositPayment atomically adds to deposit_paid and recomputes the
	// payment status in a single statement, returning the updated row.
	ApplyDepositPayment(ctx context.Context, tenantID, reservationID string, amount decimal.Decimal, updatedBy string) (*domain.Reservation, error)
}
