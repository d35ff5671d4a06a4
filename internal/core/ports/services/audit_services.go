package services

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
)

// AuditSvcFacade records and reads the audit trail.
type AuditSvcFacade interface {
	// Record writes an audit entry best effort: failures are logged and
	// swallowed so the primary action is never blocked.
	Record(ctx context.Context, tenantID, userID, action, entityType, entityID, detail string)

	// ListEntries retrieves a paginated audit trail (ADMIN only).
	ListEntries(ctx context.Context, tenantID string, limit, offset int, requestingUserID string) ([]domain.AuditEntry, error)
}
