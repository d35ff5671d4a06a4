package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// auditService implements the AuditSvcFacade interface
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates a new audit service with the provided dependencies
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade, authorizer portssvc.TenantAuthorizerSvc) portssvc.AuditSvcFacade {
	return &auditService{
		BaseService: BaseService{TenantAuthorizer: authorizer},
		auditRepo:   auditRepo,
	}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record writes an audit entry best effort. A failed write is logged and
// swallowed so the primary action is never rolled back over its audit trail.
func (s *auditService) Record(ctx context.Context, tenantID, userID, action, entityType, entityID, detail string) {
	entry := domain.AuditEntry{
		EntryID:    uuid.NewString(),
		TenantID:   tenantID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}
	if err := s.auditRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record audit entry",
			slog.String("tenant_id", tenantID),
			slog.String("action", action),
			slog.String("entity_type", entityType))
	}
}

// ListEntries retrieves the audit trail (ADMIN only).
func (s *auditService) ListEntries(ctx context.Context, tenantID string, limit, offset int, requestingUserID string) ([]domain.AuditEntry, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	entries, err := s.auditRepo.FindEntries(ctx, tenantID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit entries",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if entries == nil {
		return []domain.AuditEntry{}, nil
	}
	return entries, nil
}
