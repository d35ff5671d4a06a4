package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

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

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.CrateLoan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, tenantID, loanID string) (*domain.CrateLoan, error) {
	args := m.Called(ctx, tenantID, loanID)
	var loan *domain.CrateLoan
	if args.Get(0) != nil {
		loan = args.Get(0).(*domain.CrateLoan)
	}
	return loan, args.Error(1)
}

func (m *MockLoanRepository) FindLoans(ctx context.Context, tenantID string, status domain.LoanStatus, limit, offset int) ([]domain.CrateLoan, error) {
	args := m.Called(ctx, tenantID, status, limit, offset)
	var loans []domain.CrateLoan
	if args.Get(0) != nil {
		loans = args.Get(0).([]domain.CrateLoan)
	}
	return loans, args.Error(1)
}

func (m *MockLoanRepository) ApplyDepositPayment(ctx context.Context, tenantID, loanID string, amount decimal.Decimal, updatedBy string) (*domain.CrateLoan, error) {
	args := m.Called(ctx, tenantID, loanID, amount, updatedBy)
	var loan *domain.CrateLoan
	if args.Get(0) != nil {
		loan = args.Get(0).(*domain.CrateLoan)
	}
	return loan, args.Error(1)
}

func (m *MockLoanRepository) MarkLoanReturned(ctx context.Context, tenantID, loanID string, updatedBy string) error {
	args := m.Called(ctx, tenantID, loanID, updatedBy)
	return args.Error(0)
}

// --- Test Suite ---
type LoanServiceTestSuite struct {
	suite.Suite
	mockLoanRepo    *MockLoanRepository
	mockTenantRepo  *MockTenantRepository
	mockClientRepo  *MockClientRepository
	mockCounterRepo *MockCounterRepository
	mockAudit       *MockAuditService
	service         portssvc.LoanSvcFacade

	tenantID string
	userID   string
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockCounterRepo = new(MockCounterRepository)
	suite.mockAudit = new(MockAuditService)
	suite.mockAudit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.service = services.NewLoanService(
		suite.mockLoanRepo,
		suite.mockTenantRepo,
		suite.mockClientRepo,
		suite.mockCounterRepo,
		allowAllAuthorizer{},
		suite.mockAudit,
	)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *LoanServiceTestSuite) TestCreateLoan_TicketFromCounter() {
	ctx := context.Background()
	clientID := uuid.NewString()
	tenant := &domain.Tenant{TenantID: suite.tenantID, CautionRate: decimal.NewFromInt(50)}
	client := &domain.Client{ClientID: clientID, TenantID: suite.tenantID, Name: "Fatima"}
	year := time.Now().Year()
	counterKey := fmt.Sprintf("BON-%d", year)
	expectedTicket := fmt.Sprintf("BON-%d-007", year)

	suite.mockTenantRepo.On("FindTenantByID", ctx, suite.tenantID).Return(tenant, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.tenantID, clientID).Return(client, nil).Once()
	suite.mockCounterRepo.On("NextSequence", ctx, suite.tenantID, counterKey).Return(int64(7), nil).Once()
	suite.mockLoanRepo.On("SaveLoan", ctx, mock.MatchedBy(func(l domain.CrateLoan) bool {
		return l.TicketNumber == expectedTicket &&
			l.DepositAmount.Equal(decimal.NewFromInt(200)) &&
			l.Status == domain.LoanOpen &&
			l.PaymentStatus == domain.PaymentEmpty
	})).Return(nil).Once()

	loan, err := suite.service.CreateLoan(ctx, suite.tenantID, dto.CreateLoanRequest{
		ClientID:   clientID,
		CrateCount: 4,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(expectedTicket, loan.TicketNumber)
	suite.True(loan.DepositAmount.Equal(decimal.NewFromInt(200)))
	suite.mockLoanRepo.AssertExpectations(suite.T())
	suite.mockCounterRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestReturnLoan_Success() {
	ctx := context.Background()
	loanID := uuid.NewString()
	returned := &domain.CrateLoan{
		LoanID:       loanID,
		TicketNumber: "BON-2026-012",
		Status:       domain.LoanReturned,
	}

	suite.mockLoanRepo.On("MarkLoanReturned", ctx, suite.tenantID, loanID, suite.userID).Return(nil).Once()
	suite.mockLoanRepo.On("FindLoanByID", ctx, suite.tenantID, loanID).Return(returned, nil).Once()

	loan, err := suite.service.ReturnLoan(ctx, suite.tenantID, loanID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.LoanReturned, loan.Status)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestReturnLoan_CautionOutstanding() {
	ctx := context.Background()
	loanID := uuid.NewString()

	suite.mockLoanRepo.On("MarkLoanReturned", ctx, suite.tenantID, loanID, suite.userID).Return(apperrors.ErrCautionOutstanding).Once()

	loan, err := suite.service.ReturnLoan(ctx, suite.tenantID, loanID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrCautionOutstanding)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "FindLoanByID")
}

func (suite *LoanServiceTestSuite) TestRecordDepositPayment_RejectsNegativeAmount() {
	ctx := context.Background()

	loan, err := suite.service.RecordDepositPayment(ctx, suite.tenantID, uuid.NewString(), decimal.NewFromInt(-10), suite.userID)

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "ApplyDepositPayment")
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
