package mapping

import (
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/models"
)

func ToModelCrateLoan(d domain.CrateLoan) models.CrateLoan {
	return models.CrateLoan{
		LoanID:        d.LoanID,
		TicketNumber:  d.TicketNumber,
		TenantID:      d.TenantID,
		ClientID:      d.ClientID,
		ClientName:    d.ClientName,
		CrateCount:    d.CrateCount,
		CautionRate:   d.CautionRate,
		DepositAmount: d.DepositAmount,
		DepositPaid:   d.DepositPaid,
		PaymentStatus: string(d.PaymentStatus),
		Status:        string(d.Status),
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

func ToDomainCrateLoan(m models.CrateLoan) domain.CrateLoan {
	return domain.CrateLoan{
		LoanID:        m.LoanID,
		TicketNumber:  m.TicketNumber,
		TenantID:      m.TenantID,
		ClientID:      m.ClientID,
		ClientName:    m.ClientName,
		CrateCount:    m.CrateCount,
		CautionRate:   m.CautionRate,
		DepositAmount: m.DepositAmount,
		DepositPaid:   m.DepositPaid,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		Status:        domain.LoanStatus(m.Status),
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

func ToDomainCrateLoanSlice(ms []models.CrateLoan) []domain.CrateLoan {
	ds := make([]domain.CrateLoan, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCrateLoan(m)
	}
	return ds
}
