package dto

import (
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReservationRequest defines the payload for requesting a reservation.
type CreateReservationRequest struct {
	ClientID   string `json:"clientID" binding:"required"`
	CrateCount int    `json:"crateCount" binding:"required,gt=0"`
	Notes      string `json:"notes"`
}

// ListReservationsParams defines query parameters for listing reservations.
type ListReservationsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=REQUESTED APPROVED REJECTED CANCELLED CONVERTED"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// UpdateReservationStatusRequest transitions a reservation.
type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED CANCELLED CONVERTED"`
}

// RecordPaymentRequest records a (possibly partial) caution payment.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"required,oneof=CASH CARD CHEQUE TRANSFER"`
}

// ReservationResponse is the public shape of a reservation. DueDate is
// derived from the creation date through the season schedule.
type ReservationResponse struct {
	ReservationID    string          `json:"reservationID"`
	ClientID         string          `json:"clientID"`
	ClientName       string          `json:"clientName"`
	CrateCount       int             `json:"crateCount"`
	CautionRate      decimal.Decimal `json:"cautionRate"`
	DepositRequired  decimal.Decimal `json:"depositRequired"`
	DepositPaid      decimal.Decimal `json:"depositPaid"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount"`
	PaymentStatus    string          `json:"paymentStatus"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	DueDate          time.Time       `json:"dueDate"`
	Season           string          `json:"season"`
	DurationInMonths int             `json:"durationInMonths"`
}

// ToReservationResponse converts a domain reservation, deriving due date and
// season fields.
func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	season := domain.SeasonOf(r.CreatedAt.Month())
	return ReservationResponse{
		ReservationID:    r.ReservationID,
		ClientID:         r.ClientID,
		ClientName:       r.ClientName,
		CrateCount:       r.CrateCount,
		CautionRate:      r.CautionRate,
		DepositRequired:  r.DepositRequired,
		DepositPaid:      r.DepositPaid,
		RemainingAmount:  r.DepositRemaining(),
		PaymentStatus:    string(r.PaymentStatus),
		Status:           string(r.Status),
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt,
		DueDate:          r.DueDate(),
		Season:           string(season),
		DurationInMonths: domain.SeasonDurationMonths(season),
	}
}

// ToListReservationsResponse converts a slice of domain reservations.
func ToListReservationsResponse(rs []domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(rs))
	for i := range rs {
		out[i] = ToReservationResponse(&rs[i])
	}
	return out
}
