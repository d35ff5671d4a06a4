package services

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/dto"
)

// ReceptionSvcFacade manages truck intakes and storage rooms.
type ReceptionSvcFacade interface {
	// CreateReception registers a truck arrival with a serial number.
	CreateReception(ctx context.Context, tenantID string, req dto.CreateReceptionRequest, creatorUserID string) (*domain.Reception, error)

	// GetReceptionByID retrieves one reception.
	GetReceptionByID(ctx context.Context, tenantID, receptionID, requestingUserID string) (*domain.Reception, error)

	// ListReceptions retrieves a paginated, optionally status-filtered list.
	ListReceptions(ctx context.Context, tenantID string, status domain.ReceptionStatus, limit, offset int, requestingUserID string) ([]domain.Reception, error)

	// UpdateStatus transitions the reception intake status.
	UpdateStatus(ctx context.Context, tenantID, receptionID string, status domain.ReceptionStatus, requestingUserID string) error

	// AssignRoom sets the storage room of a reception.
	AssignRoom(ctx context.Context, tenantID, receptionID, roomID, requestingUserID string) error

	// CreateRoom adds a storage room.
	CreateRoom(ctx context.Context, tenantID string, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error)

	// ListRooms lists the tenant's rooms.
	ListRooms(ctx context.Context, tenantID, requestingUserID string) ([]domain.Room, error)
}
