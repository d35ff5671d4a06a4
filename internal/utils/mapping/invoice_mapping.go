package mapping

import (
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/models"
)

func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:   d.InvoiceID,
		Number:      d.Number,
		TenantID:    d.TenantID,
		ClientID:    d.ClientID,
		ClientName:  d.ClientName,
		Amount:      d.Amount,
		Status:      string(d.Status),
		DueDate:     d.DueDate,
		Notes:       d.Notes,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		Number:      m.Number,
		TenantID:    m.TenantID,
		ClientID:    m.ClientID,
		ClientName:  m.ClientName,
		Amount:      m.Amount,
		Status:      domain.InvoiceStatus(m.Status),
		DueDate:     m.DueDate,
		Notes:       m.Notes,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
