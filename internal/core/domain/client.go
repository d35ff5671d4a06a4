package domain

import "time"

// Client is a warehouse customer (grower, trader) storing goods with a tenant.
// Dependent records carry a denormalized copy of the client name; deleting a
// client intentionally leaves those snapshots in place.
type Client struct {
	ClientID string `json:"clientID"` // Primary Key (UUID)
	TenantID string `json:"tenantID"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Village  string `json:"village"`
	Address  string `json:"address"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
