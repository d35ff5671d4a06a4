package pgsql

import (
	"context"
	"fmt"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	"github.com/frigosaas/frigo-backend/internal/models"
	"github.com/frigosaas/frigo-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

func (r *PgxAuditRepository) SaveEntry(ctx context.Context, entry domain.AuditEntry) error {
	m := mapping.ToModelAuditEntry(entry)
	query := `
        INSERT INTO audit_log (entry_id, tenant_id, user_id, action, entity_type, entity_id, detail, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.TenantID, m.UserID, m.Action, m.EntityType, m.EntityID, m.Detail, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}
	return nil
}

func (r *PgxAuditRepository) FindEntries(ctx context.Context, tenantID string, limit, offset int) ([]domain.AuditEntry, error) {
	query := `
        SELECT entry_id, tenant_id, user_id, action, entity_type, entity_id, detail, created_at
        FROM audit_log
        WHERE tenant_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	ms := []models.AuditEntry{}
	for rows.Next() {
		var m models.AuditEntry
		if err := rows.Scan(
			&m.EntryID, &m.TenantID, &m.UserID, &m.Action, &m.EntityType, &m.EntityID, &m.Detail, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit entry rows: %w", rows.Err())
	}
	return mapping.ToDomainAuditEntrySlice(ms), nil
}
