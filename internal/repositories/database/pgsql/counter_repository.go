package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCounterRepository struct {
	BaseRepository
}

func newPgxCounterRepository(pool *pgxpool.Pool) portsrepo.CounterRepositoryFacade {
	return &PgxCounterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CounterRepositoryFacade = (*PgxCounterRepository)(nil)

// NextSequence allocates the next number for (tenantID, key) in one upsert.
// The increment happens inside the statement, so two concurrent callers are
// serialized on the row and always see distinct values.
func (r *PgxCounterRepository) NextSequence(ctx context.Context, tenantID, key string) (int64, error) {
	query := `
        INSERT INTO counters (tenant_id, key, value)
        VALUES ($1, $2, 1)
        ON CONFLICT (tenant_id, key)
        DO UPDATE SET value = counters.value + 1
        RETURNING value;
    `
	var value int64
	if err := r.Pool.QueryRow(ctx, query, tenantID, key).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance counter %s/%s: %w", tenantID, key, err)
	}
	return value, nil
}
