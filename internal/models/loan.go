package models

import "github.com/shopspring/decimal"

// CrateLoan represents a row in the crate_loans table.
type CrateLoan struct {
	LoanID        string          `json:"loanID" db:"loan_id"`
	TicketNumber  string          `json:"ticketNumber" db:"ticket_number"`
	TenantID      string          `json:"tenantID" db:"tenant_id"`
	ClientID      string          `json:"clientID" db:"client_id"`
	ClientName    string          `json:"clientName" db:"client_name"`
	CrateCount    int             `json:"crateCount" db:"crate_count"`
	CautionRate   decimal.Decimal `json:"cautionRate" db:"caution_rate"`
	DepositAmount decimal.Decimal `json:"depositAmount" db:"deposit_amount"`
	DepositPaid   decimal.Decimal `json:"depositPaid" db:"deposit_paid"`
	PaymentStatus string          `json:"paymentStatus" db:"payment_status"`
	Status        string          `json:"status" db:"status"`
	AuditFields
}
