package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const businessDateFormat = "2006-01-02"

// cashService implements the CashSvcFacade interface
type cashService struct {
	BaseService
	cashRepo   portsrepo.CashRepositoryFacade
	tenantRepo portsrepo.TenantReader
	cache      portssvc.OverviewCache
	audit      portssvc.AuditSvcFacade
}

// NewCashService creates a new cash service with the provided dependencies.
// cache may be nil; overviews are then recomputed on every call.
func NewCashService(
	cashRepo portsrepo.CashRepositoryFacade,
	tenantRepo portsrepo.TenantReader,
	cache portssvc.OverviewCache,
	authorizer portssvc.TenantAuthorizerSvc,
	audit portssvc.AuditSvcFacade,
) portssvc.CashSvcFacade {
	return &cashService{
		BaseService: BaseService{TenantAuthorizer: authorizer},
		cashRepo:    cashRepo,
		tenantRepo:  tenantRepo,
		cache:       cache,
		audit:       audit,
	}
}

var _ portssvc.CashSvcFacade = (*cashService)(nil)

// businessDateOf truncates an instant to its UTC business date.
func businessDateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RecordMovement appends a movement to the open day. The repository rejects
// the insert with apperrors.ErrDayClosed once a closure exists for the day.
func (s *cashService) RecordMovement(ctx context.Context, tenantID string, req dto.CreateMovementRequest, creatorUserID string) (*domain.CashMovement, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleManager); err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewAppError(400, "movement amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	businessDate := businessDateOf(now)

	movement := domain.CashMovement{
		MovementID: uuid.NewString(),
		TenantID:   tenantID,
		Direction:  domain.MovementDirection(req.Direction),
		Reason:     req.Reason,
		ClientID:   req.ClientID,
		InvoiceID:  req.InvoiceID,
		Amount:     req.Amount,
		Method:     domain.PaymentMethod(req.Method),
		Reference:  req.Reference,
		ReceiptURL: req.ReceiptURL,
		IsClosed:   false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.cashRepo.SaveMovement(ctx, movement); err != nil {
		if errors.Is(err, apperrors.ErrDayClosed) {
			s.LogInfo(ctx, "Movement rejected, business day already closed",
				slog.String("tenant_id", tenantID))
			return nil, apperrors.ErrDayClosed
		}
		s.LogError(ctx, err, "Failed to save cash movement",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.invalidateOverview(ctx, tenantID, businessDate)
	s.audit.Record(ctx, tenantID, creatorUserID, "MOVEMENT:"+req.Direction, "cash_movement", movement.MovementID, req.Amount.String())
	s.LogInfo(ctx, "Cash movement recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("direction", req.Direction),
		slog.String("amount", req.Amount.String()))
	return &movement, nil
}

func (s *cashService) ListMovements(ctx context.Context, tenantID string, businessDate time.Time, before *portsrepo.MovementCursor, limit int, requestingUserID string) ([]domain.CashMovement, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	movements, err := s.cashRepo.FindMovementsByDay(ctx, tenantID, businessDateOf(businessDate), before, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash movements",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if movements == nil {
		return []domain.CashMovement{}, nil
	}
	return movements, nil
}

// GetDayOverview computes opening + sum(in) - sum(out). Dashboards poll this
// endpoint, so results are briefly cached per tenant and date.
func (s *cashService) GetDayOverview(ctx context.Context, tenantID string, businessDate time.Time, requestingUserID string) (*domain.DayOverview, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	businessDate = businessDateOf(businessDate)

	if s.cache != nil {
		cached, err := s.cache.GetOverview(ctx, tenantID, businessDate)
		if err != nil {
			s.LogDebug(ctx, "Overview cache lookup failed",
				slog.String("error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	totals, err := s.cashRepo.SumMovementsByDay(ctx, tenantID, businessDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum cash movements",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	isClosed := false
	if _, err := s.cashRepo.FindClosure(ctx, tenantID, businessDate); err == nil {
		isClosed = true
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	overview := &domain.DayOverview{
		TenantID:     tenantID,
		BusinessDate: businessDate,
		OpeningCash:  tenant.OpeningCash,
		TotalIn:      totals.TotalIn,
		TotalOut:     totals.TotalOut,
		Balance:      domain.CashBalance(tenant.OpeningCash, totals.TotalIn, totals.TotalOut),
		IsClosed:     isClosed,
	}

	if s.cache != nil {
		if err := s.cache.SetOverview(ctx, overview); err != nil {
			s.LogDebug(ctx, "Overview cache store failed",
				slog.String("error", err.Error()))
		}
	}
	return overview, nil
}

// CloseDay reconciles and locks a business day. The closure snapshot and the
// movement locks are written in one repository transaction; a duplicate
// closure surfaces as apperrors.ErrDuplicate through the unique constraint.
func (s *cashService) CloseDay(ctx context.Context, tenantID string, req dto.CloseDayRequest, requestingUserID string) (*domain.DayClosure, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	businessDate, err := time.ParseInLocation(businessDateFormat, req.Date, time.UTC)
	if err != nil {
		return nil, apperrors.NewAppError(400, "invalid business date, expected YYYY-MM-DD", apperrors.ErrValidation)
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	closure := domain.DayClosure{
		ClosureID:    uuid.NewString(),
		TenantID:     tenantID,
		BusinessDate: businessDate,
		OpeningCash:  tenant.OpeningCash,
		CountedCash:  req.CountedCash,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	// The repository sums the day inside the closing transaction so the
	// recorded totals match the exact set of movements being locked.
	closed, err := s.cashRepo.CloseDay(ctx, closure)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogInfo(ctx, "Day already closed",
				slog.String("tenant_id", tenantID),
				slog.String("business_date", req.Date))
		} else {
			s.LogError(ctx, err, "Failed to close day",
				slog.String("tenant_id", tenantID),
				slog.String("business_date", req.Date))
		}
		return nil, err
	}

	s.invalidateOverview(ctx, tenantID, businessDate)
	s.audit.Record(ctx, tenantID, requestingUserID, "CLOSE_DAY", "day_closure", closed.ClosureID, req.Date)
	s.LogInfo(ctx, "Day closed",
		slog.String("closure_id", closed.ClosureID),
		slog.String("business_date", req.Date),
		slog.String("variance", closed.Variance.String()))
	return closed, nil
}

func (s *cashService) ListClosures(ctx context.Context, tenantID string, limit, offset int, requestingUserID string) ([]domain.DayClosure, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	closures, err := s.cashRepo.FindClosures(ctx, tenantID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list day closures",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if closures == nil {
		return []domain.DayClosure{}, nil
	}
	return closures, nil
}

func (s *cashService) invalidateOverview(ctx context.Context, tenantID string, businessDate time.Time) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateOverview(ctx, tenantID, businessDate); err != nil {
		s.LogDebug(ctx, "Overview cache invalidation failed",
			slog.String("error", err.Error()))
	}
}
