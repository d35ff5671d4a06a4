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
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	audit      portssvc.AuditSvcFacade
}

// NewClientService creates a new client service with the provided dependencies
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, authorizer portssvc.TenantAuthorizerSvc, audit portssvc.AuditSvcFacade) portssvc.ClientSvcFacade {
	return &clientService{
		BaseService: BaseService{TenantAuthorizer: authorizer},
		clientRepo:  clientRepo,
		audit:       audit,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, tenantID string, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleManager); err != nil {
		return nil, err
	}

	now := time.Now()
	client := domain.Client{
		ClientID: uuid.NewString(),
		TenantID: tenantID,
		Name:     req.Name,
		Phone:    req.Phone,
		Village:  req.Village,
		Address:  req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.audit.Record(ctx, tenantID, creatorUserID, "CREATE", "client", client.ClientID, client.Name)
	s.LogInfo(ctx, "Client created",
		slog.String("client_id", client.ClientID),
		slog.String("tenant_id", tenantID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, tenantID, clientID, requestingUserID string) (*domain.Client, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, tenantID, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client",
				slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, tenantID string, limit, offset int, requestingUserID string) ([]domain.Client, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.FindClients(ctx, tenantID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, tenantID, clientID string, req dto.UpdateClientRequest, requestingUserID string) (*domain.Client, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleManager); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindClientByID(ctx, tenantID, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Village != nil {
		client.Village = *req.Village
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = requestingUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client",
			slog.String("client_id", clientID))
		return nil, err
	}

	s.audit.Record(ctx, tenantID, requestingUserID, "UPDATE", "client", clientID, client.Name)
	return client, nil
}

// DeleteClient soft deletes a client. Reservations, loans and invoices keep
// their denormalized client name snapshots.
func (s *clientService) DeleteClient(ctx context.Context, tenantID, clientID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.clientRepo.MarkClientDeleted(ctx, tenantID, clientID, time.Now(), requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete client",
				slog.String("client_id", clientID))
		}
		return err
	}
	s.audit.Record(ctx, tenantID, requestingUserID, "DELETE", "client", clientID, "")
	s.LogInfo(ctx, "Client deleted",
		slog.String("client_id", clientID),
		slog.String("tenant_id", tenantID))
	return nil
}
