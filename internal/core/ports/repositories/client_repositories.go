package repositories

import (
	"context"
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
)

// ClientRepositoryFacade defines persistence operations for warehouse clients.
type ClientRepositoryFacade interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// FindClientByID retrieves a client scoped to a tenant.
	FindClientByID(ctx context.Context, tenantID, clientID string) (*domain.Client, error)

	// FindClients retrieves a paginated list of a tenant's clients.
	FindClients(ctx context.Context, tenantID string, limit, offset int) ([]domain.Client, error)

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, client domain.Client) error

	// MarkClientDeleted soft deletes a client. Dependent records keep their
	// denormalized name snapshots.
	MarkClientDeleted(ctx context.Context, tenantID, clientID string, deletedAt time.Time, deletedBy string) error
}
