package repositories

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
)

// ReceptionRepositoryFacade defines persistence operations for receptions and rooms.
type ReceptionRepositoryFacade interface {
	// SaveReception persists a new reception.
	SaveReception(ctx context.Context, reception domain.Reception) error

	// FindReceptionByID retrieves a reception scoped to a tenant.
	FindReceptionByID(ctx context.Context, tenantID, receptionID string) (*domain.Reception, error)

	// FindReceptions retrieves a paginated list, optionally filtered by status.
	FindReceptions(ctx context.Context, tenantID string, status domain.ReceptionStatus, limit, offset int) ([]domain.Reception, error)

	// UpdateReceptionStatus transitions a reception's intake status.
	UpdateReceptionStatus(ctx context.Context, tenantID, receptionID string, status domain.ReceptionStatus, updatedBy string) error

	// AssignRoom sets the storage room of a reception.
	AssignRoom(ctx context.Context, tenantID, receptionID, roomID string, updatedBy string) error

	// SaveRoom persists a new room.
	SaveRoom(ctx context.Context, room domain.Room) error

	// FindRooms lists a tenant's rooms.
	FindRooms(ctx context.Context, tenantID string) ([]domain.Room, error)
}
