package mapping

import (
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/models"
)

func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:     d.TenantID,
		Name:         d.Name,
		City:         d.City,
		CurrencyCode: d.CurrencyCode,
		CautionRate:  d.CautionRate,
		OpeningCash:  d.OpeningCash,
		IsActive:     d.IsActive,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:     m.TenantID,
		Name:         m.Name,
		City:         m.City,
		CurrencyCode: m.CurrencyCode,
		CautionRate:  m.CautionRate,
		OpeningCash:  m.OpeningCash,
		IsActive:     m.IsActive,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

func ToDomainTenantSlice(ms []models.Tenant) []domain.Tenant {
	ds := make([]domain.Tenant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenant(m)
	}
	return ds
}
