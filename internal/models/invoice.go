package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row in the invoices table.
type Invoice struct {
	InvoiceID  string          `json:"invoiceID" db:"invoice_id"`
	Number     string          `json:"number" db:"number"`
	TenantID   string          `json:"tenantID" db:"tenant_id"`
	ClientID   string          `json:"clientID" db:"client_id"`
	ClientName string          `json:"clientName" db:"client_name"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Status     string          `json:"status" db:"status"`
	DueDate    time.Time       `json:"dueDate" db:"due_date"`
	Notes      string          `json:"notes" db:"notes"`
	AuditFields
}
