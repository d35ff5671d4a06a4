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

// --- Mock ReservationRepository ---
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, tenantID, reservationID string) (*domain.Reservation, error) {
	args := m.Called(ctx, tenantID, reservationID)
	var reservation *domain.Reservation
	if args.Get(0) != nil {
		reservation = args.Get(0).(*domain.Reservation)
	}
	return reservation, args.Error(1)
}

func (m *MockReservationRepository) FindReservations(ctx context.Context, tenantID string, status domain.ReservationStatus, limit, offset int) ([]domain.Reservation, error) {
	args := m.Called(ctx, tenantID, status, limit, offset)
	var reservations []domain.Reservation
	if args.Get(0) != nil {
		reservations = args.Get(0).([]domain.Reservation)
	}
	return reservations, args.Error(1)
}

func (m *MockReservationRepository) UpdateReservationStatus(ctx context.Context, tenantID, reservationID string, status domain.ReservationStatus, updatedBy string) error {
	args := m.Called(ctx, tenantID, reservationID, status, updatedBy)
	return args.Error(0)
}

func (m *MockReservationRepository) ApplyDepositPayment(ctx context.Context, tenantID, reservationID string, amount decimal.Decimal, updatedBy string) (*domain.Reservation, error) {
	args := m.Called(ctx, tenantID, reservationID, amount, updatedBy)
	var reservation *domain.Reservation
	if args.Get(0) != nil {
		reservation = args.Get(0).(*domain.Reservation)
	}
	return reservation, args.Error(1)
}

// --- Test Suite ---
type ReservationServiceTestSuite struct {
	suite.Suite
	mockReservationRepo *MockReservationRepository
	mockTenantRepo      *MockTenantRepository
	mockClientRepo      *MockClientRepository
	mockAudit           *MockAuditService
	service             portssvc.ReservationSvcFacade

	tenantID string
	userID   string
}

func (suite *ReservationServiceTestSuite) SetupTest() {
	suite.mockReservationRepo = new(MockReservationRepository)
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockAudit = new(MockAuditService)
	suite.mockAudit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.service = services.NewReservationService(
		suite.mockReservationRepo,
		suite.mockTenantRepo,
		suite.mockClientRepo,
		allowAllAuthorizer{},
		suite.mockAudit,
	)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_DepositFromCautionRate() {
	ctx := context.Background()
	clientID := uuid.NewString()
	tenant := &domain.Tenant{TenantID: suite.tenantID, CautionRate: decimal.NewFromInt(100)}
	client := &domain.Client{ClientID: clientID, TenantID: suite.tenantID, Name: "Ahmed"}

	suite.mockTenantRepo.On("FindTenantByID", ctx, suite.tenantID).Return(tenant, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.tenantID, clientID).Return(client, nil).Once()
	suite.mockReservationRepo.On("SaveReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.CrateCount == 10 &&
			r.DepositRequired.Equal(decimal.NewFromInt(1000)) &&
			r.DepositPaid.IsZero() &&
			r.PaymentStatus == domain.PaymentEmpty &&
			r.Status == domain.ReservationRequested &&
			r.ClientName == "Ahmed"
	})).Return(nil).Once()

	reservation, err := suite.service.CreateReservation(ctx, suite.tenantID, dto.CreateReservationRequest{
		ClientID:   clientID,
		CrateCount: 10,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(reservation)
	suite.True(reservation.DepositRequired.Equal(decimal.NewFromInt(1000)))
	suite.True(reservation.CautionRate.Equal(decimal.NewFromInt(100)))
	suite.NotEmpty(reservation.ReservationID)
	suite.mockReservationRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_UnknownClient() {
	ctx := context.Background()
	clientID := uuid.NewString()
	tenant := &domain.Tenant{TenantID: suite.tenantID, CautionRate: decimal.NewFromInt(100)}

	suite.mockTenantRepo.On("FindTenantByID", ctx, suite.tenantID).Return(tenant, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.tenantID, clientID).Return(nil, apperrors.ErrNotFound).Once()

	reservation, err := suite.service.CreateReservation(ctx, suite.tenantID, dto.CreateReservationRequest{
		ClientID:   clientID,
		CrateCount: 5,
	}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(reservation)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "SaveReservation")
}

func (suite *ReservationServiceTestSuite) TestRecordDepositPayment_Partial() {
	ctx := context.Background()
	reservationID := uuid.NewString()
	amount := decimal.NewFromInt(400)
	updated := &domain.Reservation{
		ReservationID:   reservationID,
		TenantID:        suite.tenantID,
		DepositRequired: decimal.NewFromInt(1000),
		DepositPaid:     decimal.NewFromInt(400),
		PaymentStatus:   domain.PaymentPartial,
	}

	suite.mockReservationRepo.On("ApplyDepositPayment", ctx, suite.tenantID, reservationID, amount, suite.userID).Return(updated, nil).Once()

	reservation, err := suite.service.RecordDepositPayment(ctx, suite.tenantID, reservationID, amount, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPartial, reservation.PaymentStatus)
	suite.True(reservation.DepositRemaining().Equal(decimal.NewFromInt(600)))
	suite.mockReservationRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestRecordDepositPayment_RejectsNonPositiveAmount() {
	ctx := context.Background()

	reservation, err := suite.service.RecordDepositPayment(ctx, suite.tenantID, uuid.NewString(), decimal.Zero, suite.userID)

	suite.Require().Error(err)
	suite.Nil(reservation)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "ApplyDepositPayment")
}

func (suite *ReservationServiceTestSuite) TestUpdateStatus_AllowedTransition() {
	ctx := context.Background()
	reservationID := uuid.NewString()
	existing := &domain.Reservation{
		ReservationID: reservationID,
		TenantID:      suite.tenantID,
		Status:        domain.ReservationRequested,
	}

	suite.mockReservationRepo.On("FindReservationByID", ctx, suite.tenantID, reservationID).Return(existing, nil).Once()
	suite.mockReservationRepo.On("UpdateReservationStatus", ctx, suite.tenantID, reservationID, domain.ReservationApproved, suite.userID).Return(nil).Once()

	err := suite.service.UpdateStatus(ctx, suite.tenantID, reservationID, domain.ReservationApproved, suite.userID)

	suite.Require().NoError(err)
	suite.mockReservationRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestUpdateStatus_InvalidTransition() {
	ctx := context.Background()
	reservationID := uuid.NewString()
	existing := &domain.Reservation{
		ReservationID: reservationID,
		TenantID:      suite.tenantID,
		Status:        domain.ReservationRequested,
	}

	suite.mockReservationRepo.On("FindReservationByID", ctx, suite.tenantID, reservationID).Return(existing, nil).Once()

	// REQUESTED cannot jump straight to CONVERTED.
	err := suite.service.UpdateStatus(ctx, suite.tenantID, reservationID, domain.ReservationConverted, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "UpdateReservationStatus")
}

func (suite *ReservationServiceTestSuite) TestListReservations_EmptyResult() {
	ctx := context.Background()

	suite.mockReservationRepo.On("FindReservations", ctx, suite.tenantID, domain.ReservationStatus(""), 20, 0).Return(nil, nil).Once()

	reservations, err := suite.service.ListReservations(ctx, suite.tenantID, "", 20, 0, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(reservations)
	suite.Empty(reservations)
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}
