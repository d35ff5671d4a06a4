package mapping

import (
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/models"
)

func ToModelReservation(d domain.Reservation) models.Reservation {
	return models.Reservation{
		ReservationID:   d.ReservationID,
		TenantID:        d.TenantID,
		ClientID:        d.ClientID,
		ClientName:      d.ClientName,
		CrateCount:      d.CrateCount,
		CautionRate:     d.CautionRate,
		DepositRequired: d.DepositRequired,
		DepositPaid:     d.DepositPaid,
		PaymentStatus:   string(d.PaymentStatus),
		Status:          string(d.Status),
		Notes:           d.Notes,
		AuditFields:     toModelAudit(d.AuditFields),
	}
}

func ToDomainReservation(m models.Reservation) domain.Reservation {
	return domain.Reservation{
		ReservationID:   m.ReservationID,
		TenantID:        m.TenantID,
		ClientID:        m.ClientID,
		ClientName:      m.ClientName,
		CrateCount:      m.CrateCount,
		CautionRate:     m.CautionRate,
		DepositRequired: m.DepositRequired,
		DepositPaid:     m.DepositPaid,
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		Status:          domain.ReservationStatus(m.Status),
		Notes:           m.Notes,
		AuditFields:     toDomainAudit(m.AuditFields),
	}
}

func ToDomainReservationSlice(ms []models.Reservation) []domain.Reservation {
	ds := make([]domain.Reservation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReservation(m)
	}
	return ds
}
