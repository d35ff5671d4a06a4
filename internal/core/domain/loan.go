package domain

import "github.com/shopspring/decimal"

// LoanStatus indicates whether an empty-crate loan is still out.
type LoanStatus string

const (
	LoanOpen     LoanStatus = "OPEN"
	LoanReturned LoanStatus = "RETURNED"
)

// CrateLoan is a ticketed loan of empty crates to a client against a
// refundable caution deposit.
type CrateLoan struct {
	LoanID        string          `json:"loanID"`       // Primary Key (UUID)
	TicketNumber  string          `json:"ticketNumber"` // e.g. BON-2025-001, per-tenant sequence
	TenantID      string          `json:"tenantID"`
	ClientID      string          `json:"clientID"`
	ClientName    string          `json:"clientName"` // Denormalized snapshot
	CrateCount    int             `json:"crateCount"`
	CautionRate   decimal.Decimal `json:"cautionRate"`
	DepositAmount decimal.Decimal `json:"depositAmount"` // CrateCount x CautionRate
	DepositPaid   decimal.Decimal `json:"depositPaid"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	Status        LoanStatus      `json:"status"`
	AuditFields
}

// DepositRemaining returns the caution amount still owed on the loan.
func (l CrateLoan) DepositRemaining() decimal.Decimal {
	return l.DepositAmount.Sub(l.DepositPaid)
}
