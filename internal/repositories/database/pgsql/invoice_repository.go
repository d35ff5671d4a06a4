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

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, number, tenant_id, client_id, client_name, amount,
		status, due_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.Number,
		&m.TenantID,
		&m.ClientID,
		&m.ClientName,
		&m.Amount,
		&m.Status,
		&m.DueDate,
		&m.Notes,
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

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
        INSERT INTO invoices (invoice_id, number, tenant_id, client_id, client_name, amount,
            status, due_date, notes, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID, m.Number, m.TenantID, m.ClientID, m.ClientName, m.Amount,
		m.Status, m.DueDate, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already used: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, tenantID, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE tenant_id = $1 AND invoice_id = $2;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, tenantID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	inv := mapping.ToDomainInvoice(*m)
	return &inv, nil
}

func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context, tenantID string, status domain.InvoiceStatus, limit, offset int) ([]domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4;
    `
	rows, err := r.Pool.Query(ctx, query, tenantID, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	ms := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}
	return mapping.ToDomainInvoiceSlice(ms), nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, tenantID, invoiceID string, status domain.InvoiceStatus, updatedBy string) error {
	query := `
        UPDATE invoices
        SET status = $1, last_updated_at = $2, last_updated_by = $3
        WHERE tenant_id = $4 AND invoice_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), time.Now(), updatedBy, tenantID, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
