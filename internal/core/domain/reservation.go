package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus indicates the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationRequested ReservationStatus = "REQUESTED"
	ReservationApproved  ReservationStatus = "APPROVED"
	ReservationRejected  ReservationStatus = "REJECTED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationConverted ReservationStatus = "CONVERTED" // Turned into a reception
)

// Reservation is a client's request to store a number of crates.
// The due date is not persisted; it is derived from CreatedAt via the season
// schedule (see DueDateFor).
type Reservation struct {
	ReservationID   string            `json:"reservationID"` // Primary Key (UUID)
	TenantID        string            `json:"tenantID"`
	ClientID        string            `json:"clientID"`
	ClientName      string            `json:"clientName"` // Denormalized snapshot
	CrateCount      int               `json:"crateCount"`
	CautionRate     decimal.Decimal   `json:"cautionRate"`     // Per-crate rate at creation time
	DepositRequired decimal.Decimal   `json:"depositRequired"` // CrateCount x CautionRate
	DepositPaid     decimal.Decimal   `json:"depositPaid"`
	PaymentStatus   PaymentStatus     `json:"paymentStatus"`
	Status          ReservationStatus `json:"status"`
	Notes           string            `json:"notes"`
	AuditFields
}

// DueDate derives the storage due date from the creation date.
func (r Reservation) DueDate() time.Time {
	return DueDateFor(r.CreatedAt)
}

// DepositRemaining returns the caution amount still owed.
func (r Reservation) DepositRemaining() decimal.Decimal {
	return r.DepositRequired.Sub(r.DepositPaid)
}

// RequiredDeposit computes the caution owed for a crate count at a rate.
func RequiredDeposit(crateCount int, cautionRate decimal.Decimal) decimal.Decimal {
	return cautionRate.Mul(decimal.NewFromInt(int64(crateCount)))
}

// PaymentStatusFor derives the payment status from required and paid amounts.
func PaymentStatusFor(required, paid decimal.Decimal) PaymentStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return PaymentEmpty
	case paid.GreaterThanOrEqual(required):
		return PaymentPaid
	default:
		return PaymentPartial
	}
}
