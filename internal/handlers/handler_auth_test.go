package handlers_test

import (
	"context"
	"encoding/json"
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
	"github.com/frigosaas/frigo-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, tenantID string, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, deletedBy string) error {
	args := m.Called(ctx, userID, deletedBy)
	return args.Error(0)
}

func (m *MockUserService) SetUserActive(ctx context.Context, userID string, isActive bool, updatedBy string) error {
	args := m.Called(ctx, userID, isActive, updatedBy)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockUserService  *MockUserService
	mockTokenService *MockTokenService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)

	cfg := &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		IsProduction: true, // keeps swagger routes out of the test router
	}
	services := &portssvc.ServiceContainer{
		User:         suite.mockUserService,
		TokenService: suite.mockTokenService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AuthHandlerTestSuite) postLogin(body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	passwordHash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "aziz",
		Name:         "Aziz",
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	suite.mockUserService.On("GetUserByUsername", mock.Anything, "aziz").Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).
		Return("access-token", time.Now().Add(15*time.Minute), nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, user).
		Return("refresh-token", time.Now().Add(7*24*time.Hour), nil).Once()
	suite.mockUserService.On("UpdateRefreshToken", mock.Anything, user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	w := suite.postLogin(`{"login":"aziz","password":"s3cret-pass"}`)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("access-token", resp.Token)
	suite.Equal("refresh-token", resp.RefreshToken)
	suite.Equal(user.UserID, resp.User.UserID)

	suite.mockUserService.AssertExpectations(suite.T())
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	passwordHash, err := utils.HashPassword("right-pass")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "aziz",
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	suite.mockUserService.On("GetUserByUsername", mock.Anything, "aziz").Return(user, nil).Once()

	w := suite.postLogin(`{"login":"aziz","password":"wrong-pass"}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenService.AssertNotCalled(suite.T(), "GenerateAccessToken")
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownLogin() {
	suite.mockUserService.On("GetUserByUsername", mock.Anything, "nobody").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postLogin(`{"login":"nobody","password":"whatever"}`)

	// Unknown login and wrong password answer identically.
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenService.AssertNotCalled(suite.T(), "GenerateAccessToken")
}

func (suite *AuthHandlerTestSuite) TestLogin_DeactivatedAccount() {
	passwordHash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "aziz",
		PasswordHash: passwordHash,
		IsActive:     false,
	}

	suite.mockUserService.On("GetUserByUsername", mock.Anything, "aziz").Return(user, nil).Once()

	w := suite.postLogin(`{"login":"aziz","password":"s3cret-pass"}`)

	suite.Equal(http.StatusForbidden, w.Code)

	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Account is deactivated", resp.Error)
	suite.mockTokenService.AssertNotCalled(suite.T(), "GenerateAccessToken")
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
