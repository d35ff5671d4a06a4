package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementDirection distinguishes receipts from payouts.
type MovementDirection string

const (
	MovementIn  MovementDirection = "IN"
	MovementOut MovementDirection = "OUT"
)

// PaymentMethod enumerates how cash register amounts change hands.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodCard     PaymentMethod = "CARD"
	MethodCheque   PaymentMethod = "CHEQUE"
	MethodTransfer PaymentMethod = "TRANSFER"
)

// CashMovement is a single cash register event. Movements belonging to a
// closed business day are locked against edits.
type CashMovement struct {
	MovementID string            `json:"movementID"` // Primary Key (UUID)
	TenantID   string            `json:"tenantID"`
	Direction  MovementDirection `json:"direction"`
	Reason     string            `json:"reason"`
	ClientID   string            `json:"clientID,omitempty"`  // Optional linkage
	InvoiceID  string            `json:"invoiceID,omitempty"` // Optional linkage
	Amount     decimal.Decimal   `json:"amount"`
	Method     PaymentMethod     `json:"method"`
	Reference  string            `json:"reference"`
	ReceiptURL string            `json:"receiptURL,omitempty"`
	ClosureID  string            `json:"closureID,omitempty"` // Set once the day is closed
	IsClosed   bool              `json:"isClosed"`
	AuditFields
}

// DayClosure is the end-of-day reconciliation snapshot that locks the day's
// movements.
type DayClosure struct {
	ClosureID    string          `json:"closureID"` // Primary Key (UUID)
	TenantID     string          `json:"tenantID"`
	BusinessDate time.Time       `json:"businessDate"` // Midnight UTC of the closed day
	OpeningCash  decimal.Decimal `json:"openingCash"`
	TotalIn      decimal.Decimal `json:"totalIn"`
	TotalOut     decimal.Decimal `json:"totalOut"`
	ExpectedCash decimal.Decimal `json:"expectedCash"` // Opening + TotalIn - TotalOut
	CountedCash  decimal.Decimal `json:"countedCash"`  // Operator-entered actual cash
	Variance     decimal.Decimal `json:"variance"`     // Counted - Expected
	Notes        string          `json:"notes"`
	AuditFields
}

// DayOverview is the live aggregate served to the register dashboard.
type DayOverview struct {
	TenantID     string          `json:"tenantID"`
	BusinessDate time.Time       `json:"businessDate"`
	OpeningCash  decimal.Decimal `json:"openingCash"`
	TotalIn      decimal.Decimal `json:"totalIn"`
	TotalOut     decimal.Decimal `json:"totalOut"`
	Balance      decimal.Decimal `json:"balance"`
	IsClosed     bool            `json:"isClosed"`
}

// CashBalance computes opening + sum(in) - sum(out).
func CashBalance(opening, totalIn, totalOut decimal.Decimal) decimal.Decimal {
	return opening.Add(totalIn).Sub(totalOut)
}

// Reconcile fills in the day totals and derives the expected cash and the
// variance against the operator-counted amount.
func (c *DayClosure) Reconcile(totalIn, totalOut decimal.Decimal) {
	c.TotalIn = totalIn
	c.TotalOut = totalOut
	c.ExpectedCash = CashBalance(c.OpeningCash, totalIn, totalOut)
	c.Variance = c.CountedCash.Sub(c.ExpectedCash)
}
