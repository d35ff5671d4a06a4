package models

import "github.com/shopspring/decimal"

// Reservation represents a row in the reservations table. The due date is
// derived at read time and never stored.
type Reservation struct {
	ReservationID   string          `json:"reservationID" db:"reservation_id"`
	TenantID        string          `json:"tenantID" db:"tenant_id"`
	ClientID        string          `json:"clientID" db:"client_id"`
	ClientName      string          `json:"clientName" db:"client_name"`
	CrateCount      int             `json:"crateCount" db:"crate_count"`
	CautionRate     decimal.Decimal `json:"cautionRate" db:"caution_rate"`
	DepositRequired decimal.Decimal `json:"depositRequired" db:"deposit_required"`
	DepositPaid     decimal.Decimal `json:"depositPaid" db:"deposit_paid"`
	PaymentStatus   string          `json:"paymentStatus" db:"payment_status"`
	Status          string          `json:"status" db:"status"`
	Notes           string          `json:"notes" db:"notes"`
	AuditFields
}
