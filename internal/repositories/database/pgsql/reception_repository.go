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

type PgxReceptionRepository struct {
	BaseRepository
}

func newPgxReceptionRepository(pool *pgxpool.Pool) portsrepo.ReceptionRepositoryFacade {
	return &PgxReceptionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceptionRepositoryFacade = (*PgxReceptionRepository)(nil)

const receptionColumns = `reception_id, serial_number, tenant_id, client_id, client_name,
		truck_plate, driver_name, product, room_id, crate_count, arrived_at, status,
		created_at, created_by, last_updated_at, last_updated_by`

func scanReception(row pgx.Row) (*models.Reception, error) {
	var m models.Reception
	err := row.Scan(
		&m.ReceptionID,
		&m.SerialNumber,
		&m.TenantID,
		&m.ClientID,
		&m.ClientName,
		&m.TruckPlate,
		&m.DriverName,
		&m.Product,
		&m.RoomID,
		&m.CrateCount,
		&m.ArrivedAt,
		&m.Status,
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

func (r *PgxReceptionRepository) SaveReception(ctx context.Context, reception domain.Reception) error {
	m := mapping.ToModelReception(reception)
	query := `
        INSERT INTO receptions (reception_id, serial_number, tenant_id, client_id, client_name,
            truck_plate, driver_name, product, room_id, crate_count, arrived_at, status,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ReceptionID, m.SerialNumber, m.TenantID, m.ClientID, m.ClientName,
		m.TruckPlate, m.DriverName, m.Product, m.RoomID, m.CrateCount, m.ArrivedAt, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("reception serial number already used: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save reception: %w", err)
	}
	return nil
}

func (r *PgxReceptionRepository) FindReceptionByID(ctx context.Context, tenantID, receptionID string) (*domain.Reception, error) {
	query := `SELECT ` + receptionColumns + ` FROM receptions WHERE tenant_id = $1 AND reception_id = $2;`
	m, err := scanReception(r.Pool.QueryRow(ctx, query, tenantID, receptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reception by ID %s: %w", receptionID, err)
	}
	rec := mapping.ToDomainReception(*m)
	return &rec, nil
}

func (r *PgxReceptionRepository) FindReceptions(ctx context.Context, tenantID string, status domain.ReceptionStatus, limit, offset int) ([]domain.Reception, error) {
	query := `
        SELECT ` + receptionColumns + `
        FROM receptions
        WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
        ORDER BY arrived_at DESC
        LIMIT $3 OFFSET $4;
    `
	rows, err := r.Pool.Query(ctx, query, tenantID, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query receptions: %w", err)
	}
	defer rows.Close()

	ms := []models.Reception{}
	for rows.Next() {
		m, err := scanReception(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reception row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reception rows: %w", rows.Err())
	}
	return mapping.ToDomainReceptionSlice(ms), nil
}

func (r *PgxReceptionRepository) UpdateReceptionStatus(ctx context.Context, tenantID, receptionID string, status domain.ReceptionStatus, updatedBy string) error {
	query := `
        UPDATE receptions
        SET status = $1, last_updated_at = $2, last_updated_by = $3
        WHERE tenant_id = $4 AND reception_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), time.Now(), updatedBy, tenantID, receptionID)
	if err != nil {
		return fmt.Errorf("failed to update reception status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReceptionRepository) AssignRoom(ctx context.Context, tenantID, receptionID, roomID string, updatedBy string) error {
	query := `
        UPDATE receptions
        SET room_id = $1, last_updated_at = $2, last_updated_by = $3
        WHERE tenant_id = $4 AND reception_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, roomID, time.Now(), updatedBy, tenantID, receptionID)
	if err != nil {
		return fmt.Errorf("failed to assign room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReceptionRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	m := mapping.ToModelRoom(room)
	query := `
        INSERT INTO rooms (room_id, tenant_id, name, capacity,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.RoomID, m.TenantID, m.Name, m.Capacity,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("room name already used: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

func (r *PgxReceptionRepository) FindRooms(ctx context.Context, tenantID string) ([]domain.Room, error) {
	query := `
        SELECT room_id, tenant_id, name, capacity,
            created_at, created_by, last_updated_at, last_updated_by
        FROM rooms
        WHERE tenant_id = $1
        ORDER BY name;
    `
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	ms := []models.Room{}
	for rows.Next() {
		var m models.Room
		if err := rows.Scan(
			&m.RoomID, &m.TenantID, &m.Name, &m.Capacity,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", rows.Err())
	}
	return mapping.ToDomainRoomSlice(ms), nil
}
