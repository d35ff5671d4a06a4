package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/google/uuid"
)

// roleRank orders roles by privilege so AuthorizeUserAction can treat a
// stronger role as satisfying a weaker requirement.
var roleRank = map[domain.UserTenantRole]int{
	domain.RoleClient:  1,
	domain.RoleViewer:  2,
	domain.RoleManager: 3,
	domain.RoleAdmin:   4,
}

// tenantService implements the TenantSvcFacade interface
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
}

// NewTenantService creates a new tenant service with the provided dependencies
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade) portssvc.TenantSvcFacade {
	return &tenantService{tenantRepo: tenantRepo}
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// AuthorizeUserAction checks the caller's membership and role strength.
func (s *tenantService) AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.UserTenantRole) error {
	membership, err := s.tenantRepo.FindUserTenantRole(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to resolve tenant membership",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return err
	}
	if roleRank[membership.Role] < roleRank[requiredRole] {
		return apperrors.ErrForbidden
	}
	return nil
}

// CreateTenant creates a tenant and enrolls the creator as its first ADMIN.
func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	now := time.Now()
	tenant := domain.Tenant{
		TenantID:     uuid.NewString(),
		Name:         req.Name,
		City:         req.City,
		CurrencyCode: req.CurrencyCode,
		CautionRate:  req.CautionRate,
		OpeningCash:  req.OpeningCash,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		s.LogError(ctx, err, "Failed to save tenant",
			slog.String("tenant_id", tenant.TenantID))
		return nil, err
	}

	membership := domain.UserTenant{
		UserID:   creatorUserID,
		TenantID: tenant.TenantID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}
	if err := s.tenantRepo.AddUserToTenant(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to enroll creator as tenant admin",
			slog.String("tenant_id", tenant.TenantID),
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Tenant created",
		slog.String("tenant_id", tenant.TenantID),
		slog.String("creator_id", creatorUserID))
	return &tenant, nil
}

// GetTenantByID retrieves a tenant after verifying the caller is a member.
func (s *tenantService) GetTenantByID(ctx context.Context, tenantID, requestingUserID string) (*domain.Tenant, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, tenantID, domain.RoleClient); err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tenant by ID",
				slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	return tenant, nil
}

// ListUserTenants lists the tenants the user belongs to.
func (s *tenantService) ListUserTenants(ctx context.Context, userID string) ([]domain.Tenant, error) {
	tenants, err := s.tenantRepo.FindTenantsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenants for user",
			slog.String("user_id", userID))
		return nil, err
	}
	if tenants == nil {
		return []domain.Tenant{}, nil
	}
	return tenants, nil
}

// ListMembers lists a tenant's memberships.
func (s *tenantService) ListMembers(ctx context.Context, tenantID, requestingUserID string) ([]domain.UserTenant, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	members, err := s.tenantRepo.FindTenantMembers(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenant members",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	return members, nil
}

// UpdateTenant updates tenant settings (ADMIN only).
func (s *tenantService) UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, requestingUserID string) (*domain.Tenant, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, tenantID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.City != nil {
		tenant.City = *req.City
	}
	if req.CautionRate != nil {
		tenant.CautionRate = *req.CautionRate
	}
	if req.OpeningCash != nil {
		tenant.OpeningCash = *req.OpeningCash
	}
	tenant.LastUpdatedAt = time.Now()
	tenant.LastUpdatedBy = requestingUserID

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		s.LogError(ctx, err, "Failed to update tenant",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Tenant updated", slog.String("tenant_id", tenantID))
	return tenant, nil
}

// AddMember adds a user to the tenant with a role (ADMIN only).
func (s *tenantService) AddMember(ctx context.Context, tenantID, targetUserID string, role domain.UserTenantRole, requestingUserID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, tenantID, domain.RoleAdmin); err != nil {
		return err
	}

	membership := domain.UserTenant{
		UserID:   targetUserID,
		TenantID: tenantID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := s.tenantRepo.AddUserToTenant(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add member to tenant",
			slog.String("tenant_id", tenantID),
			slog.String("target_user_id", targetUserID))
		return err
	}

	s.LogInfo(ctx, "Member added to tenant",
		slog.String("tenant_id", tenantID),
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(role)))
	return nil
}

// UpdateMemberRole changes a member's role (ADMIN only).
func (s *tenantService) UpdateMemberRole(ctx context.Context, tenantID, targetUserID string, role domain.UserTenantRole, requestingUserID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, tenantID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.tenantRepo.UpdateUserTenantRole(ctx, targetUserID, tenantID, role); err != nil {
		s.LogError(ctx, err, "Failed to update member role",
			slog.String("tenant_id", tenantID),
			slog.String("target_user_id", targetUserID))
		return err
	}
	return nil
}

// RemoveMember removes a user from the tenant (ADMIN only). Admins cannot
// remove themselves, so a tenant always keeps at least one admin.
func (s *tenantService) RemoveMember(ctx context.Context, tenantID, targetUserID, requestingUserID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, tenantID, domain.RoleAdmin); err != nil {
		return err
	}
	if targetUserID == requestingUserID {
		return apperrors.NewAppError(400, "admins cannot remove themselves from a tenant", apperrors.ErrValidation)
	}
	if err := s.tenantRepo.RemoveUserFromTenant(ctx, targetUserID, tenantID); err != nil {
		s.LogError(ctx, err, "Failed to remove member from tenant",
			slog.String("tenant_id", tenantID),
			slog.String("target_user_id", targetUserID))
		return err
	}
	s.LogInfo(ctx, "Member removed from tenant",
		slog.String("tenant_id", tenantID),
		slog.String("target_user_id", targetUserID))
	return nil
}
