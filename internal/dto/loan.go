package dto

import (
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the payload for issuing a crate-loan ticket.
type CreateLoanRequest struct {
	ClientID   string `json:"clientID" binding:"required"`
	CrateCount int    `json:"crateCount" binding:"required,gt=0"`
}

// ListLoansParams defines query parameters for listing loans.
type ListLoansParams struct {
	Status string `form:"status" binding:"omitempty,oneof=OPEN RETURNED"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// LoanResponse is the public shape of a crate loan.
type LoanResponse struct {
	LoanID          string          `json:"loanID"`
	TicketNumber    string          `json:"ticketNumber"`
	ClientID        string          `json:"clientID"`
	ClientName      string          `json:"clientName"`
	CrateCount      int             `json:"crateCount"`
	CautionRate     decimal.Decimal `json:"cautionRate"`
	DepositAmount   decimal.Decimal `json:"depositAmount"`
	DepositPaid     decimal.Decimal `json:"depositPaid"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	PaymentStatus   string          `json:"paymentStatus"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToLoanResponse converts a domain loan.
func ToLoanResponse(l *domain.CrateLoan) LoanResponse {
	return LoanResponse{
		LoanID:          l.LoanID,
		TicketNumber:    l.TicketNumber,
		ClientID:        l.ClientID,
		ClientName:      l.ClientName,
		CrateCount:      l.CrateCount,
		CautionRate:     l.CautionRate,
		DepositAmount:   l.DepositAmount,
		DepositPaid:     l.DepositPaid,
		RemainingAmount: l.DepositRemaining(),
		PaymentStatus:   string(l.PaymentStatus),
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt,
	}
}

// ToListLoansResponse converts a slice of domain loans.
func ToListLoansResponse(ls []domain.CrateLoan) []LoanResponse {
	out := make([]LoanResponse, len(ls))
	for i := range ls {
		out[i] = ToLoanResponse(&ls[i])
	}
	return out
}
