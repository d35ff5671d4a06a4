package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "DRAFT"
	InvoiceSent    InvoiceStatus = "SENT"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// Invoice is a billing document issued to a client. Numbers come from a
// per-tenant atomic counter, formatted as FAC-YYYY-NNNN.
type Invoice struct {
	InvoiceID  string          `json:"invoiceID"` // Primary Key (UUID)
	Number     string          `json:"number"`
	TenantID   string          `json:"tenantID"`
	ClientID   string          `json:"clientID"`
	ClientName string          `json:"clientName"` // Denormalized snapshot
	Amount     decimal.Decimal `json:"amount"`
	Status     InvoiceStatus   `json:"status"`
	DueDate    time.Time       `json:"dueDate"`
	Notes      string          `json:"notes"`
	AuditFields
}
