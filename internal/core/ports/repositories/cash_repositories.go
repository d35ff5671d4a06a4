package repositories

import (
	"context"
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DayTotals aggregates a business day's movements.
type DayTotals struct {
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal
}

// MovementCursor is a keyset pagination position over a day's movements,
// ordered by (created_at, movement_id) descending. The ID breaks ties
// between movements sharing a timestamp.
type MovementCursor struct {
	CreatedAt  time.Time
	MovementID string
}

// CashRepositoryFacade defines persistence operations for the cash register.
type CashRepositoryFacade interface {
	// SaveMovement persists a new cash movement. The insert is guarded
	// in-statement against an existing closure for the movement's business
	// date and fails with apperrors.ErrDayClosed once the day is closed.
	SaveMovement(ctx context.Context, movement domain.CashMovement) error

	// FindMovementByID retrieves a movement scoped to a tenant.
	FindMovementByID(ctx context.Context, tenantID, movementID string) (*domain.CashMovement, error)

	// FindMovementsByDay lists a business day's movements, newest first,
	// keyset-paginated by (creation time, movement ID).
	FindMovementsByDay(ctx context.Context, tenantID string, businessDate time.Time, before *MovementCursor, limit int) ([]domain.CashMovement, error)

	// SumMovementsByDay aggregates a day's IN and OUT totals.
	SumMovementsByDay(ctx context.Context, tenantID string, businessDate time.Time) (DayTotals, error)

	// CloseDay inserts the closure snapshot, marks the day's movements
	// closed and records their totals inside one database transaction, so
	// the recorded totals always match the locked set. The completed
	// closure is returned. The unique constraint on
	// (tenant_id, business_date) surfaces as apperrors.ErrDuplicate.
	CloseDay(ctx context.Context, closure domain.DayClosure) (*domain.DayClosure, error)

	// FindClosure retrieves the closure for a business date, if any.
	FindClosure(ctx context.Context, tenantID string, businessDate time.Time) (*domain.DayClosure, error)

	// FindClosures lists recent closures, newest first.
	FindClosures(ctx context.Context, tenantID string, limit, offset int) ([]domain.DayClosure, error)
}
