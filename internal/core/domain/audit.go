package domain

import "time"

// AuditEntry records a mutating operation for traceability. Writing an entry
// is best effort and must never fail the operation being audited.
type AuditEntry struct {
	EntryID    string    `json:"entryID"` // Primary Key (UUID)
	TenantID   string    `json:"tenantID"`
	UserID     string    `json:"userID"`
	Action     string    `json:"action"`     // e.g. "invoice.create"
	EntityType string    `json:"entityType"` // e.g. "invoice"
	EntityID   string    `json:"entityID"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"createdAt"`
}
