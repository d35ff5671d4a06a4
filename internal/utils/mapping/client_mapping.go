package mapping

import (
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/models"
)

func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:    d.ClientID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		Phone:       d.Phone,
		Village:     d.Village,
		Address:     d.Address,
		AuditFields: toModelAudit(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
}

func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Phone:       m.Phone,
		Village:     m.Village,
		Address:     m.Address,
		AuditFields: toDomainAudit(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
