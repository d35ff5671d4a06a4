package repositories

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
)

// AuditRepositoryFacade defines persistence operations for the audit trail.
type AuditRepositoryFacade interface {
	// SaveEntry persists an audit entry.
	SaveEntry(ctx context.Context, entry domain.AuditEntry) error

	// FindEntries retrieves a paginated list of a tenant's audit entries,
	// newest first.
	FindEntries(ctx context.Context, tenantID string, limit, offset int) ([]domain.AuditEntry, error)
}
