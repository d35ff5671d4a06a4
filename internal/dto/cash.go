package dto

import (
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest defines the payload for recording a cash movement.
type CreateMovementRequest struct {
	Direction  string          `json:"direction" binding:"required,oneof=IN OUT"`
	Reason     string          `json:"reason" binding:"required"`
	ClientID   string          `json:"clientID"`
	InvoiceID  string          `json:"invoiceID"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Method     string          `json:"method" binding:"required,oneof=CASH CARD CHEQUE TRANSFER"`
	Reference  string          `json:"reference"`
	ReceiptURL string          `json:"receiptURL"`
}

// ListMovementsParams defines query parameters for listing a day's movements.
type ListMovementsParams struct {
	Date   string `form:"date" binding:"omitempty,businessdate"` // defaults to today
	Before string `form:"before"`
	Limit  int    `form:"limit,default=50"`
}

// CloseDayRequest carries the operator-entered actual cash for reconciliation.
type CloseDayRequest struct {
	Date        string          `json:"date" binding:"required,businessdate"`
	CountedCash decimal.Decimal `json:"countedCash" binding:"required"`
	Notes       string          `json:"notes"`
}

// ListClosuresParams defines query parameters for listing day closures.
type ListClosuresParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// MovementResponse is the public shape of a cash movement.
type MovementResponse struct {
	MovementID string          `json:"movementID"`
	Direction  string          `json:"direction"`
	Reason     string          `json:"reason"`
	ClientID   string          `json:"clientID,omitempty"`
	InvoiceID  string          `json:"invoiceID,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Reference  string          `json:"reference,omitempty"`
	ReceiptURL string          `json:"receiptURL,omitempty"`
	IsClosed   bool            `json:"isClosed"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}

// ListMovementsResponse wraps a movement page with its pagination cursor.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken string             `json:"nextToken,omitempty"`
}

// OverviewResponse is the register dashboard aggregate.
type OverviewResponse struct {
	BusinessDate string          `json:"businessDate"`
	OpeningCash  decimal.Decimal `json:"openingCash"`
	TotalIn      decimal.Decimal `json:"totalIn"`
	TotalOut     decimal.Decimal `json:"totalOut"`
	Balance      decimal.Decimal `json:"balance"`
	IsClosed     bool            `json:"isClosed"`
}

// ClosureResponse is the public shape of a day closure.
type ClosureResponse struct {
	ClosureID    string          `json:"closureID"`
	BusinessDate string          `json:"businessDate"`
	OpeningCash  decimal.Decimal `json:"openingCash"`
	TotalIn      decimal.Decimal `json:"totalIn"`
	TotalOut     decimal.Decimal `json:"totalOut"`
	ExpectedCash decimal.Decimal `json:"expectedCash"`
	CountedCash  decimal.Decimal `json:"countedCash"`
	Variance     decimal.Decimal `json:"variance"`
	Notes        string          `json:"notes,omitempty"`
	CreatedBy    string          `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
}

const businessDateFormat = "2006-01-02"

// ToMovementResponse converts a domain movement.
func ToMovementResponse(m *domain.CashMovement) MovementResponse {
	return MovementResponse{
		MovementID: m.MovementID,
		Direction:  string(m.Direction),
		Reason:     m.Reason,
		ClientID:   m.ClientID,
		InvoiceID:  m.InvoiceID,
		Amount:     m.Amount,
		Method:     string(m.Method),
		Reference:  m.Reference,
		ReceiptURL: m.ReceiptURL,
		IsClosed:   m.IsClosed,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

// ToOverviewResponse converts a domain day overview.
func ToOverviewResponse(o *domain.DayOverview) OverviewResponse {
	return OverviewResponse{
		BusinessDate: o.BusinessDate.Format(businessDateFormat),
		OpeningCash:  o.OpeningCash,
		TotalIn:      o.TotalIn,
		TotalOut:     o.TotalOut,
		Balance:      o.Balance,
		IsClosed:     o.IsClosed,
	}
}

// ToClosureResponse converts a domain day closure.
func ToClosureResponse(c *domain.DayClosure) ClosureResponse {
	return ClosureResponse{
		ClosureID:    c.ClosureID,
		BusinessDate: c.BusinessDate.Format(businessDateFormat),
		OpeningCash:  c.OpeningCash,
		TotalIn:      c.TotalIn,
		TotalOut:     c.TotalOut,
		ExpectedCash: c.ExpectedCash,
		CountedCash:  c.CountedCash,
		Variance:     c.Variance,
		Notes:        c.Notes,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
	}
}

// ToListClosuresResponse converts a slice of domain closures.
func ToListClosuresResponse(cs []domain.DayClosure) []ClosureResponse {
	out := make([]ClosureResponse, len(cs))
	for i := range cs {
		out[i] = ToClosureResponse(&cs[i])
	}
	return out
}
