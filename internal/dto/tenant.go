package dto

import (
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTenantRequest defines the payload for creating a tenant.
type CreateTenantRequest struct {
	Name         string          `json:"name" binding:"required"`
	City         string          `json:"city"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
	CautionRate  decimal.Decimal `json:"cautionRate"`
	OpeningCash  decimal.Decimal `json:"openingCash"`
}

// UpdateTenantRequest defines the tenant settings that can change.
type UpdateTenantRequest struct {
	Name        *string          `json:"name"`
	City        *string          `json:"city"`
	CautionRate *decimal.Decimal `json:"cautionRate"`
	OpeningCash *decimal.Decimal `json:"openingCash"`
}

// AddMemberRequest adds a user to a tenant with a role.
type AddMemberRequest struct {
	UserID string `json:"userID" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=ADMIN MANAGER VIEWER CLIENT"`
}

// UpdateMemberRoleRequest changes a member's role.
type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=ADMIN MANAGER VIEWER CLIENT"`
}

// TenantResponse is the public shape of a tenant.
type TenantResponse struct {
	TenantID     string          `json:"tenantID"`
	Name         string          `json:"name"`
	City         string          `json:"city"`
	CurrencyCode string          `json:"currencyCode"`
	CautionRate  decimal.Decimal `json:"cautionRate"`
	OpeningCash  decimal.Decimal `json:"openingCash"`
	IsActive     bool            `json:"isActive"`
}

// ToTenantResponse converts a domain tenant to its public shape.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:     t.TenantID,
		Name:         t.Name,
		City:         t.City,
		CurrencyCode: t.CurrencyCode,
		CautionRate:  t.CautionRate,
		OpeningCash:  t.OpeningCash,
		IsActive:     t.IsActive,
	}
}

// MemberResponse is the public shape of a tenant membership.
type MemberResponse struct {
	UserID   string `json:"userID"`
	UserName string `json:"userName"`
	Role     string `json:"role"`
	JoinedAt string `json:"joinedAt"`
}
