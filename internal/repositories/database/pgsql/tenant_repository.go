package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	"github.com/frigosaas/frigo-backend/internal/models"
	"github.com/frigosaas/frigo-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTenantRepository struct {
	BaseRepository
}

func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const tenantColumns = `tenant_id, name, city, currency_code, caution_rate, opening_cash, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var m models.Tenant
	err := row.Scan(
		&m.TenantID,
		&m.Name,
		&m.City,
		&m.CurrencyCode,
		&m.CautionRate,
		&m.OpeningCash,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
        INSERT INTO tenants (tenant_id, name, city, currency_code, caution_rate, opening_cash, is_active,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TenantID, m.Name, m.City, m.CurrencyCode, m.CautionRate, m.OpeningCash, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tenant: %w", err)
	}
	return nil
}

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE tenant_id = $1;`
	m, err := scanTenant(r.Pool.QueryRow(ctx, query, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant by ID %s: %w", tenantID, err)
	}
	tenant := mapping.ToDomainTenant(*m)
	return &tenant, nil
}

func (r *PgxTenantRepository) FindTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	query := `
        SELECT ` + tenantColumns + `
        FROM tenants t
        JOIN user_tenants ut ON ut.tenant_id = t.tenant_id
        WHERE ut.user_id = $1
        ORDER BY t.created_at;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user tenants: %w", err)
	}
	defer rows.Close()

	ms := []models.Tenant{}
	for rows.Next() {
		m, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", rows.Err())
	}
	return mapping.ToDomainTenantSlice(ms), nil
}

func (r *PgxTenantRepository) FindUserTenantRole(ctx context.Context, userID, tenantID string) (*domain.UserTenant, error) {
	query := `
        SELECT ut.user_id, u.name, ut.tenant_id, ut.role, ut.joined_at
        FROM user_tenants ut
        JOIN users u ON u.user_id = ut.user_id
        WHERE ut.user_id = $1 AND ut.tenant_id = $2;
    `
	var m models.UserTenant
	err := r.Pool.QueryRow(ctx, query, userID, tenantID).Scan(
		&m.UserID, &m.UserName, &m.TenantID, &m.Role, &m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant membership: %w", err)
	}
	membership := mapping.ToDomainUserTenant(m)
	return &membership, nil
}

func (r *PgxTenantRepository) FindTenantMembers(ctx context.Context, tenantID string) ([]domain.UserTenant, error) {
	query := `
        SELECT ut.user_id, u.name, ut.tenant_id, ut.role, ut.joined_at
        FROM user_tenants ut
        JOIN users u ON u.user_id = ut.user_id
        WHERE ut.tenant_id = $1
        ORDER BY ut.joined_at;
    `
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant members: %w", err)
	}
	defer rows.Close()

	members := []domain.UserTenant{}
	for rows.Next() {
		var m models.UserTenant
		if err := rows.Scan(&m.UserID, &m.UserName, &m.TenantID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		members = append(members, mapping.ToDomainUserTenant(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", rows.Err())
	}
	return members, nil
}

func (r *PgxTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
        UPDATE tenants
        SET name = $1, city = $2, caution_rate = $3, opening_cash = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE tenant_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name, m.City, m.CautionRate, m.OpeningCash,
		m.LastUpdatedAt, m.LastUpdatedBy, m.TenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTenantRepository) AddUserToTenant(ctx context.Context, membership domain.UserTenant) error {
	query := `
        INSERT INTO user_tenants (user_id, tenant_id, role, joined_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.Pool.Exec(ctx, query, membership.UserID, membership.TenantID, string(membership.Role), membership.JoinedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user already member of tenant: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add user to tenant: %w", err)
	}
	return nil
}

func (r *PgxTenantRepository) UpdateUserTenantRole(ctx context.Context, userID, tenantID string, role domain.UserTenantRole) error {
	query := `UPDATE user_tenants SET role = $1 WHERE user_id = $2 AND tenant_id = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, string(role), userID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to update membership role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTenantRepository) RemoveUserFromTenant(ctx context.Context, userID, tenantID string) error {
	query := `DELETE FROM user_tenants WHERE user_id = $1 AND tenant_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to remove user from tenant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
