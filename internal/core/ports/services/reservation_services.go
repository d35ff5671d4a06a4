package services

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ReservationSvcFacade manages crate reservations and their caution deposits.
type ReservationSvcFacade interface {
	// CreateReservation requests storage for a crate count; the required
	// deposit is crates x the tenant's caution rate.
	CreateReservation(ctx context.Context, tenantID string, req dto.CreateReservationRequest, creatorUserID string) (*domain.Reservation, error)

	// GetReservationByID retrieves one reservation.
	GetReservationByID(ctx context.Context, tenantID, reservationID, requestingUserID string) (*domain.Reservation, error)

	// ListReservations retrieves a paginated, optionally status-filtered list.
	ListReservations(ctx context.Context, tenantID string, status domain.ReservationStatus, limit, offset int, requestingUserID string) ([]domain.Reservation, error)

	// UpdateStatus transitions the reservation lifecycle.
	UpdateStatus(ctx context.Context, tenantID, reservationID string, status domain.ReservationStatus, requestingUserID string) error

	// RecordDepositPayment applies a (possibly partial) caution payment and
	// returns the updated reservation.
	RecordDepositPayment(ctx context.Context, tenantID, reservationID string, amount decimal.Decimal, requestingUserID string) (*domain.Reservation, error)
}
