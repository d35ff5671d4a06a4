package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tenant represents a single warehouse operator's isolated data partition.
type Tenant struct {
	TenantID     string          `json:"tenantID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	City         string          `json:"city"`
	CurrencyCode string          `json:"currencyCode"` // Display currency, e.g. "MAD"
	CautionRate  decimal.Decimal `json:"cautionRate"`  // Per-crate refundable deposit
	OpeningCash  decimal.Decimal `json:"openingCash"`  // Configured cash register opening balance
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// UserTenantRole defines the possible roles a user can have within a tenant.
type UserTenantRole string

const (
	RoleAdmin   UserTenantRole = "ADMIN"
	RoleManager UserTenantRole = "MANAGER"
	RoleViewer  UserTenantRole = "VIEWER"
	RoleClient  UserTenantRole = "CLIENT"
)

// canWrite reports whether the role may mutate tenant data.
func (r UserTenantRole) CanWrite() bool {
	return r == RoleAdmin || r == RoleManager
}

// UserTenant represents the membership of a User in a Tenant.
type UserTenant struct {
	UserID   string         `json:"userID"`   // FK -> users.user_id
	UserName string         `json:"userName"` // Denormalized display name
	TenantID string         `json:"tenantID"` // FK -> tenants.tenant_id
	Role     UserTenantRole `json:"role"`
	JoinedAt time.Time      `json:"joinedAt"`
}
