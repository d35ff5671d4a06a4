package services_test

import (
	"context"
	"testing"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/core/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockTenantRepo *MockTenantRepository
	service        portssvc.TenantSvcFacade

	tenantID string
	userID   string
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.service = services.NewTenantService(suite.mockTenantRepo)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

// --- AuthorizeUserAction ---

func (suite *TenantServiceTestSuite) TestAuthorizeUserAction_StrongerRoleSatisfiesWeaker() {
	ctx := context.Background()
	membership := &domain.UserTenant{UserID: suite.userID, TenantID: suite.tenantID, Role: domain.RoleAdmin}

	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(membership, nil)

	suite.NoError(suite.service.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, domain.RoleViewer))
	suite.NoError(suite.service.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, domain.RoleAdmin))
}

func (suite *TenantServiceTestSuite) TestAuthorizeUserAction_WeakerRoleRejected() {
	ctx := context.Background()
	membership := &domain.UserTenant{UserID: suite.userID, TenantID: suite.tenantID, Role: domain.RoleViewer}

	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(membership, nil)

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, domain.RoleManager)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TenantServiceTestSuite) TestAuthorizeUserAction_NonMemberForbidden() {
	ctx := context.Background()

	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(nil, apperrors.ErrNotFound)

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, domain.RoleClient)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- CreateTenant ---

func (suite *TenantServiceTestSuite) TestCreateTenant_CreatorBecomesAdmin() {
	ctx := context.Background()
	req := dto.CreateTenantRequest{
		Name:         "Frigo Atlas",
		City:         "Midelt",
		CurrencyCode: "MAD",
		CautionRate:  decimal.NewFromInt(100),
		OpeningCash:  decimal.NewFromInt(5000),
	}

	suite.mockTenantRepo.On("SaveTenant", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
		return t.Name == "Frigo Atlas" && t.IsActive && t.CurrencyCode == "MAD"
	})).Return(nil).Once()
	suite.mockTenantRepo.On("AddUserToTenant", ctx, mock.MatchedBy(func(m domain.UserTenant) bool {
		return m.UserID == suite.userID && m.Role == domain.RoleAdmin
	})).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(tenant.TenantID)
	suite.True(tenant.CautionRate.Equal(decimal.NewFromInt(100)))
	suite.mockTenantRepo.AssertExpectations(suite.T())
}

// --- RemoveMember ---

func (suite *TenantServiceTestSuite) TestRemoveMember_SelfRemovalRejected() {
	ctx := context.Background()
	adminMembership := &domain.UserTenant{UserID: suite.userID, TenantID: suite.tenantID, Role: domain.RoleAdmin}

	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(adminMembership, nil)

	err := suite.service.RemoveMember(ctx, suite.tenantID, suite.userID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "RemoveUserFromTenant")
}

func (suite *TenantServiceTestSuite) TestRemoveMember_Success() {
	ctx := context.Background()
	targetUserID := uuid.NewString()
	adminMembership := &domain.UserTenant{UserID: suite.userID, TenantID: suite.tenantID, Role: domain.RoleAdmin}

	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(adminMembership, nil)
	suite.mockTenantRepo.On("RemoveUserFromTenant", ctx, targetUserID, suite.tenantID).Return(nil).Once()

	suite.NoError(suite.service.RemoveMember(ctx, suite.tenantID, targetUserID, suite.userID))
	suite.mockTenantRepo.AssertExpectations(suite.T())
}

// --- UpdateTenant ---

func (suite *TenantServiceTestSuite) TestUpdateTenant_PartialUpdate() {
	ctx := context.Background()
	adminMembership := &domain.UserTenant{UserID: suite.userID, TenantID: suite.tenantID, Role: domain.RoleAdmin}
	existing := &domain.Tenant{
		TenantID:    suite.tenantID,
		Name:        "Frigo Atlas",
		CautionRate: decimal.NewFromInt(100),
		OpeningCash: decimal.NewFromInt(5000),
	}
	newRate := decimal.NewFromInt(120)

	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(adminMembership, nil)
	suite.mockTenantRepo.On("FindTenantByID", ctx, suite.tenantID).Return(existing, nil).Once()
	suite.mockTenantRepo.On("UpdateTenant", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
		return t.CautionRate.Equal(newRate) && t.Name == "Frigo Atlas"
	})).Return(nil).Once()

	tenant, err := suite.service.UpdateTenant(ctx, suite.tenantID, dto.UpdateTenantRequest{CautionRate: &newRate}, suite.userID)

	suite.Require().NoError(err)
	suite.True(tenant.CautionRate.Equal(newRate))
	// Untouched fields keep their values.
	suite.True(tenant.OpeningCash.Equal(decimal.NewFromInt(5000)))
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
