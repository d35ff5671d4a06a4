package services

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/dto"
)

// TenantReaderSvc defines read operations for tenants.
type TenantReaderSvc interface {
	// GetTenantByID retrieves a tenant, verifying the caller is a member.
	GetTenantByID(ctx context.Context, tenantID, requestingUserID string) (*domain.Tenant, error)

	// ListUserTenants lists the tenants the user belongs to.
	ListUserTenants(ctx context.Context, userID string) ([]domain.Tenant, error)

	// ListMembers lists the memberships of a tenant.
	ListMembers(ctx context.Context, tenantID, requestingUserID string) ([]domain.UserTenant, error)
}

// TenantWriterSvc defines write operations for tenants.
type TenantWriterSvc interface {
	// CreateTenant creates a tenant and makes the creator its first ADMIN.
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error)

	// UpdateTenant updates tenant settings (ADMIN only).
	UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, requestingUserID string) (*domain.Tenant, error)

	// AddMember adds a user to the tenant with a role (ADMIN only).
	AddMember(ctx context.Context, tenantID, targetUserID string, role domain.UserTenantRole, requestingUserID string) error

	// UpdateMemberRole changes a member's role (ADMIN only).
	UpdateMemberRole(ctx context.Context, tenantID, targetUserID string, role domain.UserTenantRole, requestingUserID string) error

	// RemoveMember removes a user from the tenant (ADMIN only).
	RemoveMember(ctx context.Context, tenantID, targetUserID, requestingUserID string) error
}

// TenantAuthorizerSvc checks a user's role within a tenant. Services guard
// their operations through this interface.
type TenantAuthorizerSvc interface {
	// AuthorizeUserAction returns nil when the user holds requiredRole (or a
	// stronger one) in the tenant, apperrors.ErrForbidden otherwise.
	AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.UserTenantRole) error
}

// TenantSvcFacade combines all tenant-related service interfaces.
type TenantSvcFacade interface {
	TenantReaderSvc
	TenantWriterSvc
	TenantAuthorizerSvc
}
