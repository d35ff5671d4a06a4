package services

import (
	"context"
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	"github.com/frigosaas/frigo-backend/internal/dto"
)

// CashSvcFacade manages the cash register: movements, the live day overview
// and end-of-day closures.
type CashSvcFacade interface {
	// RecordMovement appends a cash movement to the open day.
	RecordMovement(ctx context.Context, tenantID string, req dto.CreateMovementRequest, creatorUserID string) (*domain.CashMovement, error)

	// ListMovements lists a business day's movements with keyset pagination.
	ListMovements(ctx context.Context, tenantID string, businessDate time.Time, before *portsrepo.MovementCursor, limit int, requestingUserID string) ([]domain.CashMovement, error)

	// GetDayOverview computes opening + sum(in) - sum(out) for the day.
	// Results are briefly cached since register dashboards poll it.
	GetDayOverview(ctx context.Context, tenantID string, businessDate time.Time, requestingUserID string) (*domain.DayOverview, error)

	// CloseDay reconciles and locks a business day in one transaction.
	// Closing an already closed day fails with apperrors.ErrDuplicate.
	CloseDay(ctx context.Context, tenantID string, req dto.CloseDayRequest, requestingUserID string) (*domain.DayClosure, error)

	// ListClosures lists recent closures, newest first.
	ListClosures(ctx context.Context, tenantID string, limit, offset int, requestingUserID string) ([]domain.DayClosure, error)
}

// OverviewCache is a short-TTL cache for day overviews, keyed per tenant and
// date. A nil error with a nil overview means cache miss.
type OverviewCache interface {
	GetOverview(ctx context.Context, tenantID string, businessDate time.Time) (*domain.DayOverview, error)
	SetOverview(ctx context.Context, overview *domain.DayOverview) error
	InvalidateOverview(ctx context.Context, tenantID string, businessDate time.Time) error
}
