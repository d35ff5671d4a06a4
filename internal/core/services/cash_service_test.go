package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/core/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CashRepository ---
type MockCashRepository struct {
	mock.Mock
}

func (m *MockCashRepository) SaveMovement(ctx context.Context, movement domain.CashMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockCashRepository) FindMovementByID(ctx context.Context, tenantID, movementID string) (*domain.CashMovement, error) {
	args := m.Called(ctx, tenantID, movementID)
	var movement *domain.CashMovement
	if args.Get(0) != nil {
		movement = args.Get(0).(*domain.CashMovement)
	}
	return movement, args.Error(1)
}

func (m *MockCashRepository) FindMovementsByDay(ctx context.Context, tenantID string, businessDate time.Time, before *portsrepo.MovementCursor, limit int) ([]domain.CashMovement, error) {
	args := m.Called(ctx, tenantID, businessDate, before, limit)
	var movements []domain.CashMovement
	if args.Get(0) != nil {
		movements = args.Get(0).([]domain.CashMovement)
	}
	return movements, args.Error(1)
}

func (m *MockCashRepository) SumMovementsByDay(ctx context.Context, tenantID string, businessDate time.Time) (portsrepo.DayTotals, error) {
	args := m.Called(ctx, tenantID, businessDate)
	return args.Get(0).(portsrepo.DayTotals), args.Error(1)
}

func (m *MockCashRepository) CloseDay(ctx context.Context, closure domain.DayClosure) (*domain.DayClosure, error) {
	args := m.Called(ctx, closure)
	var closed *domain.DayClosure
	if args.Get(0) != nil {
		closed = args.Get(0).(*domain.DayClosure)
	}
	return closed, args.Error(1)
}

func (m *MockCashRepository) FindClosure(ctx context.Context, tenantID string, businessDate time.Time) (*domain.DayClosure, error) {
	args := m.Called(ctx, tenantID, businessDate)
	var closure *domain.DayClosure
	if args.Get(0) != nil {
		closure = args.Get(0).(*domain.DayClosure)
	}
	return closure, args.Error(1)
}

func (m *MockCashRepository) FindClosures(ctx context.Context, tenantID string, limit, offset int) ([]domain.DayClosure, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	var closures []domain.DayClosure
	if args.Get(0) != nil {
		closures = args.Get(0).([]domain.DayClosure)
	}
	return closures, args.Error(1)
}

// --- Test Suite ---
type CashServiceTestSuite struct {
	suite.Suite
	mockCashRepo   *MockCashRepository
	mockTenantRepo *MockTenantRepository
	mockAudit      *MockAuditService
	service        portssvc.CashSvcFacade

	tenantID string
	userID   string
}

func (suite *CashServiceTestSuite) SetupTest() {
	suite.mockCashRepo = new(MockCashRepository)
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockAudit = new(MockAuditService)
	suite.mockAudit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	// No overview cache in tests: overviews are recomputed on every call.
	suite.service = services.NewCashService(
		suite.mockCashRepo,
		suite.mockTenantRepo,
		nil,
		allowAllAuthorizer{},
		suite.mockAudit,
	)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *CashServiceTestSuite) TestRecordMovement_Success() {
	ctx := context.Background()

	suite.mockCashRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.CashMovement) bool {
		return m.Direction == domain.MovementIn &&
			m.Amount.Equal(decimal.NewFromInt(250)) &&
			!m.IsClosed
	})).Return(nil).Once()

	movement, err := suite.service.RecordMovement(ctx, suite.tenantID, dto.CreateMovementRequest{
		Direction: "IN",
		Reason:    "caution payment",
		Amount:    decimal.NewFromInt(250),
		Method:    "CASH",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(movement.MovementID)
	suite.mockCashRepo.AssertExpectations(suite.T())
}

func (suite *CashServiceTestSuite) TestRecordMovement_DayAlreadyClosed() {
	ctx := context.Background()

	// The repository guards the insert against an existing closure in the
	// same statement, so the rejection surfaces from SaveMovement itself.
	suite.mockCashRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.CashMovement")).Return(apperrors.ErrDayClosed).Once()

	movement, err := suite.service.RecordMovement(ctx, suite.tenantID, dto.CreateMovementRequest{
		Direction: "OUT",
		Reason:    "refund",
		Amount:    decimal.NewFromInt(100),
		Method:    "CASH",
	}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrDayClosed)
	suite.mockCashRepo.AssertExpectations(suite.T())
}

func (suite *CashServiceTestSuite) TestRecordMovement_RejectsNonPositiveAmount() {
	ctx := context.Background()

	movement, err := suite.service.RecordMovement(ctx, suite.tenantID, dto.CreateMovementRequest{
		Direction: "IN",
		Reason:    "caution payment",
		Amount:    decimal.Zero,
		Method:    "CASH",
	}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CashServiceTestSuite) TestListMovements_ForwardsCursor() {
	ctx := context.Background()
	businessDate := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)
	cursor := &portsrepo.MovementCursor{
		CreatedAt:  time.Date(2026, time.August, 26, 10, 15, 0, 0, time.UTC),
		MovementID: "mv-042",
	}

	suite.mockCashRepo.On("FindMovementsByDay", ctx, suite.tenantID, businessDate, mock.MatchedBy(func(c *portsrepo.MovementCursor) bool {
		return c != nil && c.MovementID == "mv-042" && c.CreatedAt.Equal(cursor.CreatedAt)
	}), 20).Return([]domain.CashMovement{}, nil).Once()

	movements, err := suite.service.ListMovements(ctx, suite.tenantID, businessDate, cursor, 20, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(movements)
	suite.mockCashRepo.AssertExpectations(suite.T())
}

func (suite *CashServiceTestSuite) TestGetDayOverview_ComputesBalance() {
	ctx := context.Background()
	businessDate := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)
	tenant := &domain.Tenant{TenantID: suite.tenantID, OpeningCash: decimal.NewFromInt(500)}
	totals := portsrepo.DayTotals{
		TotalIn:  decimal.NewFromInt(1000),
		TotalOut: decimal.NewFromInt(200),
	}

	suite.mockTenantRepo.On("FindTenantByID", ctx, suite.tenantID).Return(tenant, nil).Once()
	suite.mockCashRepo.On("SumMovementsByDay", ctx, suite.tenantID, businessDate).Return(totals, nil).Once()
	suite.mockCashRepo.On("FindClosure", ctx, suite.tenantID, businessDate).Return(nil, apperrors.ErrNotFound).Once()

	overview, err := suite.service.GetDayOverview(ctx, suite.tenantID, businessDate, suite.userID)

	suite.Require().NoError(err)
	suite.True(overview.Balance.Equal(decimal.NewFromInt(1300)))
	suite.False(overview.IsClosed)
	suite.Equal(businessDate, overview.BusinessDate)
}

func (suite *CashServiceTestSuite) TestCloseDay_ReturnsReconciledClosure() {
	ctx := context.Background()
	businessDate := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)
	tenant := &domain.Tenant{TenantID: suite.tenantID, OpeningCash: decimal.NewFromInt(500)}

	// The repository sums the day inside the closing transaction; the service
	// hands it the operator inputs and gets the reconciled snapshot back.
	reconciled := domain.DayClosure{
		TenantID:     suite.tenantID,
		BusinessDate: businessDate,
		OpeningCash:  decimal.NewFromInt(500),
		TotalIn:      decimal.NewFromInt(1000),
		TotalOut:     decimal.NewFromInt(200),
		ExpectedCash: decimal.NewFromInt(1300),
		CountedCash:  decimal.NewFromInt(1250),
		Variance:     decimal.NewFromInt(-50),
	}

	suite.mockTenantRepo.On("FindTenantByID", ctx, suite.tenantID).Return(tenant, nil).Once()
	suite.mockCashRepo.On("CloseDay", ctx, mock.MatchedBy(func(c domain.DayClosure) bool {
		return c.TenantID == suite.tenantID &&
			c.BusinessDate.Equal(businessDate) &&
			c.OpeningCash.Equal(decimal.NewFromInt(500)) &&
			c.CountedCash.Equal(decimal.NewFromInt(1250))
	})).Return(&reconciled, nil).Once()

	closure, err := suite.service.CloseDay(ctx, suite.tenantID, dto.CloseDayRequest{
		Date:        "2026-08-26",
		CountedCash: decimal.NewFromInt(1250),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(closure.Variance.Equal(decimal.NewFromInt(-50)))
	suite.True(closure.ExpectedCash.Equal(decimal.NewFromInt(1300)))
	suite.mockCashRepo.AssertExpectations(suite.T())
}

func (suite *CashServiceTestSuite) TestCloseDay_AlreadyClosed() {
	ctx := context.Background()
	tenant := &domain.Tenant{TenantID: suite.tenantID, OpeningCash: decimal.NewFromInt(500)}

	suite.mockTenantRepo.On("FindTenantByID", ctx, suite.tenantID).Return(tenant, nil).Once()
	suite.mockCashRepo.On("CloseDay", ctx, mock.AnythingOfType("domain.DayClosure")).Return(nil, apperrors.ErrDuplicate).Once()

	closure, err := suite.service.CloseDay(ctx, suite.tenantID, dto.CloseDayRequest{
		Date:        "2026-08-26",
		CountedCash: decimal.NewFromInt(500),
	}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(closure)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CashServiceTestSuite) TestCloseDay_RejectsMalformedDate() {
	ctx := context.Background()

	closure, err := suite.service.CloseDay(ctx, suite.tenantID, dto.CloseDayRequest{
		Date:        "26/08/2026",
		CountedCash: decimal.NewFromInt(500),
	}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(closure)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCashRepo.AssertNotCalled(suite.T(), "CloseDay")
}

func TestCashServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashServiceTestSuite))
}
