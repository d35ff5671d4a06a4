package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/frigosaas/frigo-backend/internal/utils/numbering"
	"github.com/google/uuid"
)

// receptionService implements the ReceptionSvcFacade interface
type receptionService struct {
	BaseService
	receptionRepo portsrepo.ReceptionRepositoryFacade
	clientRepo    portsrepo.ClientRepositoryFacade
	counterRepo   portsrepo.CounterRepositoryFacade
	audit         portssvc.AuditSvcFacade
}

// NewReceptionService creates a new reception service with the provided dependencies
func NewReceptionService(
	receptionRepo portsrepo.ReceptionRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	counterRepo portsrepo.CounterRepositoryFacade,
	authorizer portssvc.TenantAuthorizerSvc,
	audit portssvc.AuditSvcFacade,
) portssvc.ReceptionSvcFacade {
	return &receptionService{
		BaseService:   BaseService{TenantAuthorizer: authorizer},
		receptionRepo: receptionRepo,
		clientRepo:    clientRepo,
		counterRepo:   counterRepo,
		audit:         audit,
	}
}

var _ portssvc.ReceptionSvcFacade = (*receptionService)(nil)

func receptionCounterKey(year int) string {
	return fmt.Sprintf("%s-%d", numbering.ReceptionPrefix, year)
}

// CreateReception registers a truck arrival with a serial number from the
// tenant's atomic counter.
func (s *receptionService) CreateReception(ctx context.Context, tenantID string, req dto.CreateReceptionRequest, creatorUserID string) (*domain.Reception, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleManager); err != nil {
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
	arrivedAt := now
	if req.ArrivedAt != nil {
		arrivedAt = *req.ArrivedAt
	}

	seq, err := s.counterRepo.NextSequence(ctx, tenantID, receptionCounterKey(now.Year()))
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate reception serial number",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	reception := domain.Reception{
		ReceptionID:  uuid.NewString(),
		SerialNumber: numbering.Format(numbering.ReceptionPrefix, now.Year(), seq),
		TenantID:     tenantID,
		ClientID:     client.ClientID,
		ClientName:   client.Name,
		TruckPlate:   req.TruckPlate,
		DriverName:   req.DriverName,
		Product:      req.Product,
		RoomID:       req.RoomID,
		CrateCount:   req.CrateCount,
		ArrivedAt:    arrivedAt,
		Status:       domain.ReceptionPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.receptionRepo.SaveReception(ctx, reception); err != nil {
		s.LogError(ctx, err, "Failed to save reception",
			slog.String("tenant_id", tenantID),
			slog.String("serial_number", reception.SerialNumber))
		return nil, err
	}

	s.audit.Record(ctx, tenantID, creatorUserID, "CREATE", "reception", reception.ReceptionID, reception.SerialNumber)
	s.LogInfo(ctx, "Reception registered",
		slog.String("reception_id", reception.ReceptionID),
		slog.String("serial_number", reception.SerialNumber),
		slog.Int("crate_count", req.CrateCount))
	return &reception, nil
}

func (s *receptionService) GetReceptionByID(ctx context.Context, tenantID, receptionID, requestingUserID string) (*domain.Reception, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	reception, err := s.receptionRepo.FindReceptionByID(ctx, tenantID, receptionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find reception",
				slog.String("reception_id", receptionID))
		}
		return nil, err
	}
	return reception, nil
}

func (s *receptionService) ListReceptions(ctx context.Context, tenantID string, status domain.ReceptionStatus, limit, offset int, requestingUserID string) ([]domain.Reception, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	receptions, err := s.receptionRepo.FindReceptions(ctx, tenantID, status, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receptions",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if receptions == nil {
		return []domain.Reception{}, nil
	}
	return receptions, nil
}

func (s *receptionService) UpdateStatus(ctx context.Context, tenantID, receptionID string, status domain.ReceptionStatus, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleManager); err != nil {
		return err
	}
	if err := s.receptionRepo.UpdateReceptionStatus(ctx, tenantID, receptionID, status, requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update reception status",
				slog.String("reception_id", receptionID))
		}
		return err
	}
	s.audit.Record(ctx, tenantID, requestingUserID, "STATUS:"+string(status), "reception", receptionID, "")
	return nil
}

func (s *receptionService) AssignRoom(ctx context.Context, tenantID, receptionID, roomID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleManager); err != nil {
		return err
	}
	if err := s.receptionRepo.AssignRoom(ctx, tenantID, receptionID, roomID, requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to assign room",
				slog.String("reception_id", receptionID),
				slog.String("room_id", roomID))
		}
		return err
	}
	s.audit.Record(ctx, tenantID, requestingUserID, "ASSIGN_ROOM", "reception", receptionID, roomID)
	return nil
}

func (s *receptionService) CreateRoom(ctx context.Context, tenantID string, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	now := time.Now()
	room := domain.Room{
		RoomID:   uuid.NewString(),
		TenantID: tenantID,
		Name:     req.Name,
		Capacity: req.Capacity,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.receptionRepo.SaveRoom(ctx, room); err != nil {
		s.LogError(ctx, err, "Failed to save room",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Room created",
		slog.String("room_id", room.RoomID),
		slog.String("tenant_id", tenantID))
	return &room, nil
}

func (s *receptionService) ListRooms(ctx context.Context, tenantID, requestingUserID string) ([]domain.Room, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	rooms, err := s.receptionRepo.FindRooms(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rooms",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if rooms == nil {
		return []domain.Room{}, nil
	}
	return rooms, nil
}
