package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// CashMovement represents a row in the cash_movements table.
type CashMovement struct {
	MovementID string          `json:"movementID" db:"movement_id"`
	TenantID   string          `json:"tenantID" db:"tenant_id"`
	Direction  string          `json:"direction" db:"direction"`
	Reason     string          `json:"reason" db:"reason"`
	ClientID   sql.NullString  `json:"clientID" db:"client_id"`
	InvoiceID  sql.NullString  `json:"invoiceID" db:"invoice_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Method     string          `json:"method" db:"method"`
	Reference  string          `json:"reference" db:"reference"`
	ReceiptURL string          `json:"receiptURL" db:"receipt_url"`
	ClosureID  sql.NullString  `json:"closureID" db:"closure_id"`
	IsClosed   bool            `json:"isClosed" db:"is_closed"`
	AuditFields
}

// DayClosure represents a row in the day_closures table. The table carries a
// UNIQUE (tenant_id, business_date) constraint so a day can only close once.
type DayClosure struct {
	ClosureID    string          `json:"closureID" db:"closure_id"`
	TenantID     string          `json:"tenantID" db:"tenant_id"`
	BusinessDate time.Time       `json:"businessDate" db:"business_date"`
	OpeningCash  decimal.Decimal `json:"openingCash" db:"opening_cash"`
	TotalIn      decimal.Decimal `json:"totalIn" db:"total_in"`
	TotalOut     decimal.Decimal `json:"totalOut" db:"total_out"`
	ExpectedCash decimal.Decimal `json:"expectedCash" db:"expected_cash"`
	CountedCash  decimal.Decimal `json:"countedCash" db:"counted_cash"`
	Variance     decimal.Decimal `json:"variance" db:"variance"`
	Notes        string          `json:"notes" db:"notes"`
	AuditFields
}
