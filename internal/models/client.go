package models

import "time"

// Client represents a row in the clients table.
type Client struct {
	ClientID string `json:"clientID" db:"client_id"`
	TenantID string `json:"tenantID" db:"tenant_id"`
	Name     string `json:"name" db:"name"`
	Phone    string `json:"phone" db:"phone"`
	Village  string `json:"village" db:"village"`
	Address  string `json:"address" db:"address"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}
