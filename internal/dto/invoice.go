package dto

import (
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the payload for issuing an invoice.
type CreateInvoiceRequest struct {
	ClientID string          `json:"clientID" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	DueDate  time.Time       `json:"dueDate" binding:"required"`
	Notes    string          `json:"notes"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Status string `form:"status" binding:"omitempty,oneof=DRAFT SENT PAID OVERDUE"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// UpdateInvoiceStatusRequest transitions an invoice.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT SENT PAID OVERDUE"`
}

// InvoiceResponse is the public shape of an invoice.
type InvoiceResponse struct {
	InvoiceID  string          `json:"invoiceID"`
	Number     string          `json:"number"`
	ClientID   string          `json:"clientID"`
	ClientName string          `json:"clientName"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	DueDate    time.Time       `json:"dueDate"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToInvoiceResponse converts a domain invoice.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:  inv.InvoiceID,
		Number:     inv.Number,
		ClientID:   inv.ClientID,
		ClientName: inv.ClientName,
		Amount:     inv.Amount,
		Status:     string(inv.Status),
		DueDate:    inv.DueDate,
		Notes:      inv.Notes,
		CreatedAt:  inv.CreatedAt,
	}
}

// ToListInvoicesResponse converts a slice of domain invoices.
func ToListInvoicesResponse(invs []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invs))
	for i := range invs {
		out[i] = ToInvoiceResponse(&invs[i])
	}
	return out
}
