package services

import (
	"context"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/frigosaas/frigo-backend/internal/dto"
)

// ClientSvcFacade manages a tenant's warehouse customers.
type ClientSvcFacade interface {
	// CreateClient adds a client to the tenant.
	CreateClient(ctx context.Context, tenantID string, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)

	// GetClientByID retrieves a client.
	GetClientByID(ctx context.Context, tenantID, clientID, requestingUserID string) (*domain.Client, error)

	// ListClients retrieves a paginated client list.
	ListClients(ctx context.Context, tenantID string, limit, offset int, requestingUserID string) ([]domain.Client, error)

	// UpdateClient updates client details.
	UpdateClient(ctx context.Context, tenantID, clientID string, req dto.UpdateClientRequest, requestingUserID string) (*domain.Client, error)

	// DeleteClient soft deletes a client. Dependent records keep their
	// denormalized name snapshots.
	DeleteClient(ctx context.Context, tenantID, clientID, requestingUserID string) error
}
