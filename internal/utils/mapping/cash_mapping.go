package mapping

import (
	"database/sql"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/models"
)

func ToModelCashMovement(d domain.CashMovement) models.CashMovement {
	m := models.CashMovement{
		MovementID:  d.MovementID,
		TenantID:    d.TenantID,
		Direction:   string(d.Direction),
		Reason:      d.Reason,
		Amount:      d.Amount,
		Method:      string(d.Method),
		Reference:   d.Reference,
		ReceiptURL:  d.ReceiptURL,
		IsClosed:    d.IsClosed,
		AuditFields: toModelAudit(d.AuditFields),
	}
	if d.ClientID != "" {
		m.ClientID = sql.NullString{String: d.ClientID, Valid: true}
	}
	if d.InvoiceID != "" {
		m.InvoiceID = sql.NullString{String: d.InvoiceID, Valid: true}
	}
	if d.ClosureID != "" {
		m.ClosureID = sql.NullString{String: d.ClosureID, Valid: true}
	}
	return m
}

func ToDomainCashMovement(m models.CashMovement) domain.CashMovement {
	return domain.CashMovement{
		MovementID:  m.MovementID,
		TenantID:    m.TenantID,
		Direction:   domain.MovementDirection(m.Direction),
		Reason:      m.Reason,
		ClientID:    m.ClientID.String,
		InvoiceID:   m.InvoiceID.String,
		Amount:      m.Amount,
		Method:      domain.PaymentMethod(m.Method),
		Reference:   m.Reference,
		ReceiptURL:  m.ReceiptURL,
		ClosureID:   m.ClosureID.String,
		IsClosed:    m.IsClosed,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

func ToDomainCashMovementSlice(ms []models.CashMovement) []domain.CashMovement {
	ds := make([]domain.CashMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashMovement(m)
	}
	return ds
}

func ToModelDayClosure(d domain.DayClosure) models.DayClosure {
	return models.DayClosure{
		ClosureID:    d.ClosureID,
		TenantID:     d.TenantID,
		BusinessDate: d.BusinessDate,
		OpeningCash:  d.OpeningCash,
		TotalIn:      d.TotalIn,
		TotalOut:     d.TotalOut,
		ExpectedCash: d.ExpectedCash,
		CountedCash:  d.CountedCash,
		Variance:     d.Variance,
		Notes:        d.Notes,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

func ToDomainDayClosure(m models.DayClosure) domain.DayClosure {
	return domain.DayClosure{
		ClosureID:    m.ClosureID,
		TenantID:     m.TenantID,
		BusinessDate: m.BusinessDate,
		OpeningCash:  m.OpeningCash,
		TotalIn:      m.TotalIn,
		TotalOut:     m.TotalOut,
		ExpectedCash: m.ExpectedCash,
		CountedCash:  m.CountedCash,
		Variance:     m.Variance,
		Notes:        m.Notes,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

func ToDomainDayClosureSlice(ms []models.DayClosure) []domain.DayClosure {
	ds := make([]domain.DayClosure, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDayClosure(m)
	}
	return ds
}

func ToModelAuditEntry(d domain.AuditEntry) models.AuditEntry {
	return models.AuditEntry{
		EntryID:    d.EntryID,
		TenantID:   d.TenantID,
		UserID:     d.UserID,
		Action:     d.Action,
		EntityType: d.EntityType,
		EntityID:   d.EntityID,
		Detail:     d.Detail,
		CreatedAt:  d.CreatedAt,
	}
}

func ToDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		EntryID:    m.EntryID,
		TenantID:   m.TenantID,
		UserID:     m.UserID,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Detail:     m.Detail,
		CreatedAt:  m.CreatedAt,
	}
}

func ToDomainAuditEntrySlice(ms []models.AuditEntry) []domain.AuditEntry {
	ds := make([]domain.AuditEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditEntry(m)
	}
	return ds
}
