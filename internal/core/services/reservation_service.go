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

// reservationService implements the ReservationSvcFacade interface
type reservationService struct {
	BaseService
	reservationRepo portsrepo.ReservationRepositoryFacade
	tenantRepo      portsrepo.TenantReader
	clientRepo      portsrepo.ClientRepositoryFacade
	audit           portssvc.AuditSvcFacade
}

// NewReservationService creates a new reservation service with the provided dependencies
func NewReservationService(
	reservationRepo portsrepo.ReservationRepositoryFacade,
	tenantRepo portsrepo.TenantReader,
	clientRepo portsrepo.ClientRepositoryFacade,
	authorizer portssvc.TenantAuthorizerSvc,
	audit portssvc.AuditSvcFacade,
) portssvc.ReservationSvcFacade {
	return &reservationService{
		BaseService:     BaseService{TenantAuthorizer: authorizer},
		reservationRepo: reservationRepo,
		tenantRepo:      tenantRepo,
		clientRepo:      clientRepo,
		audit:           audit,
	}
}

var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

// CreateReservation requests storage. The required deposit is the crate
// count times the tenant's caution rate at creation time; the rate is
// snapshotted on the reservation so later rate changes don't reprice it.
func (s *reservationService) CreateReservation(ctx context.Context, tenantID string, req dto.CreateReservationRequest, creatorUserID string) (*domain.Reservation, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleManager); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, tenantID, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(400, "client not found", apperrors.ErrValidation)
		}
		return nil, err
	}

	now := time.Now()
	required := domain.RequiredDeposit(req.CrateCount, tenant.CautionRate)
	reservation := domain.Reservation{
		ReservationID:   uuid.NewString(),
		TenantID:        tenantID,
		ClientID:        client.ClientID,
		ClientName:      client.Name,
		CrateCount:      req.CrateCount,
		CautionRate:     tenant.CautionRate,
		DepositRequired: required,
		DepositPaid:     decimal.Zero,
		PaymentStatus:   domain.PaymentEmpty,
		Status:          domain.ReservationRequested,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.reservationRepo.SaveReservation(ctx, reservation); err != nil {
		s.LogError(ctx, err, "Failed to save reservation",
			slog.String("tenant_id", tenantID),
			slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.audit.Record(ctx, tenantID, creatorUserID, "CREATE", "reservation", reservation.ReservationID, client.Name)
	s.LogInfo(ctx, "Reservation created",
		slog.String("reservation_id", reservation.ReservationID),
		slog.Int("crate_count", req.CrateCount),
		slog.String("deposit_required", required.String()))
	return &reservation, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, tenantID, reservationID, requestingUserID string) (*domain.Reservation, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	reservation, err := s.reservationRepo.FindReservationByID(ctx, tenantID, reservationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find reservation",
				slog.String("reservation_id", reservationID))
		}
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) ListReservations(ctx context.Context, tenantID string, status domain.ReservationStatus, limit, offset int, requestingUserID string) ([]domain.Reservation, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	reservations, err := s.reservationRepo.FindReservations(ctx, tenantID, status, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reservations",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if reservations == nil {
		return []domain.Reservation{}, nil
	}
	return reservations, nil
}

// validReservationTransitions lists the allowed lifecycle moves.
var validReservationTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationRequested: {domain.ReservationApproved, domain.ReservationRejected, domain.ReservationCancelled},
	domain.ReservationApproved:  {domain.ReservationConverted, domain.ReservationCancelled},
}

func (s *reservationService) UpdateStatus(ctx context.Context, tenantID, reservationID string, status domain.ReservationStatus, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleManager); err != nil {
		return err
	}

	reservation, err := s.reservationRepo.FindReservationByID(ctx, tenantID, reservationID)
	if err != nil {
		return err
	}

	allowed := false
	for _, next := range validReservationTransitions[reservation.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return apperrors.NewAppError(400, "invalid reservation status transition", apperrors.ErrValidation)
	}

	if err := s.reservationRepo.UpdateReservationStatus(ctx, tenantID, reservationID, status, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to update reservation status",
			slog.String("reservation_id", reservationID))
		return err
	}

	s.audit.Record(ctx, tenantID, requestingUserID, "STATUS:"+string(status), "reservation", reservationID, "")
	return nil
}

// RecordDepositPayment applies a caution payment. The increment and the
// resulting payment status are computed in one statement at the repository,
// so concurrent payments cannot clobber one another.
func (s *reservationService) RecordDepositPayment(ctx context.Context, tenantID, reservationID string, amount decimal.Decimal, requestingUserID string) (*domain.Reservation, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleManager); err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewAppError(400, "payment amount must be positive", apperrors.ErrValidation)
	}

	reservation, err := s.reservationRepo.ApplyDepositPayment(ctx, tenantID, reservationID, amount, requestingUserID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to apply deposit payment",
				slog.String("reservation_id", reservationID))
		}
		return nil, err
	}

	s.audit.Record(ctx, tenantID, requestingUserID, "PAYMENT", "reservation", reservationID, amount.String())
	s.LogInfo(ctx, "Reservation deposit payment recorded",
		slog.String("reservation_id", reservationID),
		slog.String("amount", amount.String()),
		slog.String("payment_status", string(reservation.PaymentStatus)))
	return reservation, nil
}
