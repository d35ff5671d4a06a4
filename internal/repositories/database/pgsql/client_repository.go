package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	"github.com/frigosaas/frigo-backend/internal/models"
	"github.com/frigosaas/frigo-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, tenant_id, name, phone, village, address,
		created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanClient(row pgx.Row) (*models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.TenantID,
		&m.Name,
		&m.Phone,
		&m.Village,
		&m.Address,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
        INSERT INTO clients (client_id, tenant_id, name, phone, village, address,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.TenantID, m.Name, m.Phone, m.Village, m.Address,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("client already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, tenantID, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE tenant_id = $1 AND client_id = $2 AND deleted_at IS NULL;`
	m, err := scanClient(r.Pool.QueryRow(ctx, query, tenantID, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	client := mapping.ToDomainClient(*m)
	return &client, nil
}

func (r *PgxClientRepository) FindClients(ctx context.Context, tenantID string, limit, offset int) ([]domain.Client, error) {
	query := `
        SELECT ` + clientColumns + `
        FROM clients
        WHERE tenant_id = $1 AND deleted_at IS NULL
        ORDER BY name
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	ms := []models.Client{}
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}
	return mapping.ToDomainClientSlice(ms), nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
        UPDATE clients
        SET name = $1, phone = $2, village = $3, address = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE tenant_id = $7 AND client_id = $8 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Phone, m.Village, m.Address,
		m.LastUpdatedAt, m.LastUpdatedBy, m.TenantID, m.ClientID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) MarkClientDeleted(ctx context.Context, tenantID, clientID string, deletedAt time.Time, deletedBy string) error {
	query := `
        UPDATE clients
        SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE tenant_id = $3 AND client_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, tenantID, clientID)
	if err != nil {
		return fmt.Errorf("failed to mark client deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
