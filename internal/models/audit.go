package models

import "time"

// AuditEntry represents a row in the audit_log table.
type AuditEntry struct {
	EntryID    string    `json:"entryID" db:"entry_id"`
	TenantID   string    `json:"tenantID" db:"tenant_id"`
	UserID     string    `json:"userID" db:"user_id"`
	Action     string    `json:"action" db:"action"`
	EntityType string    `json:"entityType" db:"entity_type"`
	EntityID   string    `json:"entityID" db:"entity_id"`
	Detail     string    `json:"detail" db:"detail"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
