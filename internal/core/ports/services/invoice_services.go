package services

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/dto"
)

// InvoiceSvcFacade manages billing documents.
type InvoiceSvcFacade interface {
	// CreateInvoice issues an invoice numbered from the tenant's atomic
	// counter (FAC-YYYY-NNNN).
	CreateInvoice(ctx context.Context, tenantID string, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// GetInvoiceByID retrieves one invoice.
	GetInvoiceByID(ctx context.Context, tenantID, invoiceID, requestingUserID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated, optionally status-filtered list.
	ListInvoices(ctx context.Context, tenantID string, status domain.InvoiceStatus, limit, offset int, requestingUserID string) ([]domain.Invoice, error)

	// UpdateStatus transitions the invoice billing status.
	UpdateStatus(ctx context.Context, tenantID, invoiceID string, status domain.InvoiceStatus, requestingUserID string) error
}
