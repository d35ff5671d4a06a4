package repositories

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
)

// InvoiceRepositoryFacade defines persistence operations for invoices.
type InvoiceRepositoryFacade interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// FindInvoiceByID retrieves an invoice scoped to a tenant.
	FindInvoiceByID(ctx context.Context, tenantID, invoiceID string) (*domain.Invoice, error)

	// FindInvoices retrieves a paginated list, optionally filtered by status.
	FindInvoices(ctx context.Context, tenantID string, status domain.InvoiceStatus, limit, offset int) ([]domain.Invoice, error)

	// UpdateInvoiceStatus transitions an invoice's billing status.
	UpdateInvoiceStatus(ctx context.Context, tenantID, invoiceID string, status domain.InvoiceStatus, updatedBy string) error
}

// CounterRepositoryFacade hands out per-tenant sequence numbers.
type CounterRepositoryFacade interface {
	// NextSequence atomically increments and returns the counter identified
	// by (tenantID, key) via a single upsert, so concurrent callers can
	// never observe the same value.
	NextSequence(ctx context.Context, tenantID, key string) (int64, error)
}
