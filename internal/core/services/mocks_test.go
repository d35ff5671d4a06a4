package services_test

import (
	"context"
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Shared mocks used across the service test suites ---

// allowAllAuthorizer satisfies TenantAuthorizerSvc and lets every caller
// through, so service tests can focus on the domain behavior. Role checks
// themselves are covered by the tenant service tests.
type allowAllAuthorizer struct{}

func (allowAllAuthorizer) AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.UserTenantRole) error {
	return nil
}

// MockAuditService records calls without asserting on them by default.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, tenantID, userID, action, entityType, entityID, detail string) {
	m.Called(ctx, tenantID, userID, action, entityType, entityID, detail)
}

func (m *MockAuditService) ListEntries(ctx context.Context, tenantID string, limit, offset int, requestingUserID string) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, tenantID, limit, offset, requestingUserID)
	var entries []domain.AuditEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditEntry)
	}
	return entries, args.Error(1)
}

// MockTenantRepository implements TenantRepositoryFacade.
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	var tenant *domain.Tenant
	if args.Get(0) != nil {
		tenant = args.Get(0).(*domain.Tenant)
	}
	return tenant, args.Error(1)
}

func (m *MockTenantRepository) FindTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, userID)
	var tenants []domain.Tenant
	if args.Get(0) != nil {
		tenants = args.Get(0).([]domain.Tenant)
	}
	return tenants, args.Error(1)
}

func (m *MockTenantRepository) FindUserTenantRole(ctx context.Context, userID, tenantID string) (*domain.UserTenant, error) {
	args := m.Called(ctx, userID, tenantID)
	var membership *domain.UserTenant
	if args.Get(0) != nil {
		membership = args.Get(0).(*domain.UserTenant)
	}
	return membership, args.Error(1)
}

func (m *MockTenantRepository) FindTenantMembers(ctx context.Context, tenantID string) ([]domain.UserTenant, error) {
	args := m.Called(ctx, tenantID)
	var members []domain.UserTenant
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.UserTenant)
	}
	return members, args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) AddUserToTenant(ctx context.Context, membership domain.UserTenant) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateUserTenantRole(ctx context.Context, userID, tenantID string, role domain.UserTenantRole) error {
	args := m.Called(ctx, userID, tenantID, role)
	return args.Error(0)
}

func (m *MockTenantRepository) RemoveUserFromTenant(ctx context.Context, userID, tenantID string) error {
	args := m.Called(ctx, userID, tenantID)
	return args.Error(0)
}

// MockClientRepository implements ClientRepositoryFacade.
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, tenantID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, tenantID, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context, tenantID string, limit, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) MarkClientDeleted(ctx context.Context, tenantID, clientID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, tenantID, clientID, deletedAt, deletedBy)
	return args.Error(0)
}

// MockCounterRepository implements CounterRepositoryFacade.
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) NextSequence(ctx context.Context, tenantID, key string) (int64, error) {
	args := m.Called(ctx, tenantID, key)
	return args.Get(0).(int64), args.Error(1)
}
