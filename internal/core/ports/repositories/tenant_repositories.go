package repositories

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
)

// TenantReader defines read operations for tenant data.
type TenantReader interface {
	// FindTenantByID retrieves a tenant by ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// FindTenantsByUserID lists the tenants a user is a member of.
	FindTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error)

	// FindUserTenantRole returns the membership of a user in a tenant, or
	// apperrors.ErrNotFound when the user is not a member.
	FindUserTenantRole(ctx context.Context, userID, tenantID string) (*domain.UserTenant, error)

	// FindTenantMembers lists all memberships of a tenant.
	FindTenantMembers(ctx context.Context, tenantID string) ([]domain.UserTenant, error)
}

// TenantWriter defines write operations for tenant data.
type TenantWriter interface {
	// SaveTenant persists a new tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenant updates tenant settings.
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error

	// AddUserToTenant records a membership.
	AddUserToTenant(ctx context.Context, membership domain.UserTenant) error

	// UpdateUserTenantRole changes a member's role.
	UpdateUserTenantRole(ctx context.Context, userID, tenantID string, role domain.UserTenantRole) error

	// RemoveUserFromTenant deletes a membership.
	RemoveUserFromTenant(ctx context.Context, userID, tenantID string) error
}

// TenantRepositoryFacade combines all tenant-related repository interfaces.
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
