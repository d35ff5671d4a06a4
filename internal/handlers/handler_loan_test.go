package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/frigosaas/frigo-backend/internal/handlers"
	"github.com/frigosaas/frigo-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) CreateLoan(ctx context.Context, tenantID string, req dto.CreateLoanRequest, creatorUserID string) (*domain.CrateLoan, error) {
	args := m.Called(ctx, tenantID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CrateLoan), args.Error(1)
}

func (m *MockLoanService) GetLoanByID(ctx context.Context, tenantID, loanID, requestingUserID string) (*domain.CrateLoan, error) {
	args := m.Called(ctx, tenantID, loanID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CrateLoan), args.Error(1)
}

func (m *MockLoanService) ListLoans(ctx context.Context, tenantID string, status domain.LoanStatus, limit, offset int, requestingUserID string) ([]domain.CrateLoan, error) {
	args := m.Called(ctx, tenantID, status, limit, offset, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CrateLoan), args.Error(1)
}

func (m *MockLoanService) RecordDepositPayment(ctx context.Context, tenantID, loanID string, amount decimal.Decimal, requestingUserID string) (*domain.CrateLoan, error) {
	args := m.Called(ctx, tenantID, loanID, amount, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CrateLoan), args.Error(1)
}

func (m *MockLoanService) ReturnLoan(ctx context.Context, tenantID, loanID, requestingUserID string) (*domain.CrateLoan, error) {
	args := m.Called(ctx, tenantID, loanID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CrateLoan), args.Error(1)
}

var _ portssvc.LoanSvcFacade = (*MockLoanService)(nil)

// --- Test Suite ---
type LoanHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockLoanService *MockLoanService
	jwtSecret       string
}

func (suite *LoanHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "frigo-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LoanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockLoanService = new(MockLoanService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keeps swagger routes out of the test router
	}
	services := &portssvc.ServiceContainer{
		Loan: suite.mockLoanService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *LoanHandlerTestSuite) TestCreateLoan_Success() {
	tenantID := uuid.NewString()
	userID := uuid.NewString()

	expected := &domain.CrateLoan{
		LoanID:        uuid.NewString(),
		TicketNumber:  "BON-2026-007",
		TenantID:      tenantID,
		ClientID:      uuid.NewString(),
		ClientName:    "Fatima",
		CrateCount:    4,
		CautionRate:   decimal.NewFromInt(50),
		DepositAmount: decimal.NewFromInt(200),
		DepositPaid:   decimal.Zero,
		PaymentStatus: domain.PaymentEmpty,
		Status:        domain.LoanOpen,
	}

	suite.mockLoanService.On("CreateLoan",
		mock.Anything,
		tenantID,
		mock.MatchedBy(func(req dto.CreateLoanRequest) bool {
			return req.ClientID == expected.ClientID && req.CrateCount == 4
		}),
		userID,
	).Return(expected, nil).Once()

	body := fmt.Sprintf(`{"clientID":%q,"crateCount":4}`, expected.ClientID)
	url := fmt.Sprintf("/api/v1/tenants/%s/loans", tenantID)
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.LoanResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.LoanID, resp.LoanID)
	suite.Equal("BON-2026-007", resp.TicketNumber)
	suite.True(resp.RemainingAmount.Equal(decimal.NewFromInt(200)))

	suite.mockLoanService.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestCreateLoan_MissingToken() {
	url := fmt.Sprintf("/api/v1/tenants/%s/loans", uuid.NewString())
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(`{"clientID":"x","crateCount":1}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLoanService.AssertNotCalled(suite.T(), "CreateLoan")
}

func (suite *LoanHandlerTestSuite) TestReturnLoan_CautionOutstanding() {
	tenantID := uuid.NewString()
	loanID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockLoanService.On("ReturnLoan", mock.Anything, tenantID, loanID, userID).
		Return(nil, apperrors.ErrCautionOutstanding).Once()

	url := fmt.Sprintf("/api/v1/tenants/%s/loans/%s/return", tenantID, loanID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLoanService.AssertExpectations(suite.T())
}

func TestLoanHandler(t *testing.T) {
	suite.Run(t, new(LoanHandlerTestSuite))
}
