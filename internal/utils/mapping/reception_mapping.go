package mapping

import (
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/models"
)

func ToModelReception(d domain.Reception) models.Reception {
	return models.Reception{
		ReceptionID:  d.ReceptionID,
		SerialNumber: d.SerialNumber,
		TenantID:     d.TenantID,
		ClientID:     d.ClientID,
		ClientName:   d.ClientName,
		TruckPlate:   d.TruckPlate,
		DriverName:   d.DriverName,
		Product:      d.Product,
		RoomID:       d.RoomID,
		CrateCount:   d.CrateCount,
		ArrivedAt:    d.ArrivedAt,
		Status:       string(d.Status),
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

func ToDomainReception(m models.Reception) domain.Reception {
	return domain.Reception{
		ReceptionID:  m.ReceptionID,
		SerialNumber: m.SerialNumber,
		TenantID:     m.TenantID,
		ClientID:     m.ClientID,
		ClientName:   m.ClientName,
		TruckPlate:   m.TruckPlate,
		DriverName:   m.DriverName,
		Product:      m.Product,
		RoomID:       m.RoomID,
		CrateCount:   m.CrateCount,
		ArrivedAt:    m.ArrivedAt,
		Status:       domain.ReceptionStatus(m.Status),
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

func ToDomainReceptionSlice(ms []models.Reception) []domain.Reception {
	ds := make([]domain.Reception, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReception(m)
	}
	return ds
}

func ToDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		RoomID:      m.RoomID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Capacity:    m.Capacity,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

func ToDomainRoomSlice(ms []models.Room) []domain.Room {
	ds := make([]domain.Room, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoom(m)
	}
	return ds
}

func ToModelRoom(d domain.Room) models.Room {
	return models.Room{
		RoomID:      d.RoomID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		Capacity:    d.Capacity,
		AuditFields: toModelAudit(d.AuditFields),
	}
}
