package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizledger/backoffice/internal/apperrors"
	"github.com/bizledger/backoffice/internal/core/domain"
	portssvc "github.com/bizledger/backoffice/internal/core/ports/services"
	"github.com/bizledger/backoffice/internal/dto"
)

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, category *domain.AccountCategory) ([]domain.Account, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountService) SeedStandardChart(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portssvc.AccountSvc = (*MockAccountService)(nil)

// --- Test Suite Setup ---

type AccountHandlerTestSuite struct {
	suite.Suite
	mockSvc *MockAccountService
	router  *gin.Engine
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.mockSvc = new(MockAccountService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{Account: suite.mockSvc})
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestListAccounts_All() {
	suite.mockSvc.On("ListAccounts", mock.Anything, (*domain.AccountCategory)(nil)).Return([]domain.Account{
		{AccountID: uuid.NewString(), Code: "1010", Name: "Cash", Category: domain.Assets, IsActive: true},
		{AccountID: uuid.NewString(), Code: "6100", Name: "Rent Expense", Category: domain.Expenses, IsActive: true},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Accounts, 2)
	suite.Equal("1010", resp.Accounts[0].Code)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_FilteredByCategory() {
	expenses := domain.Expenses
	suite.mockSvc.On("ListAccounts", mock.Anything, &expenses).Return([]domain.Account{
		{AccountID: uuid.NewString(), Code: "6100", Name: "Rent Expense", Category: domain.Expenses, IsActive: true},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts?category=expenses", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_UnknownCategory() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts?category=crypto", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccountByCode_NotFound() {
	suite.mockSvc.On("GetAccountByCode", mock.Anything, "9999").
		Return(nil, apperrors.NewNotFoundError("account not found")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/9999", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Created() {
	account := &domain.Account{
		AccountID: uuid.NewString(),
		Code:      "1050",
		Name:      "Petty Cash",
		Category:  domain.Assets,
		IsActive:  true,
	}
	suite.mockSvc.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).Return(account, nil).Once()

	payload, _ := json.Marshal(gin.H{"code": "1050", "name": "Petty Cash", "category": "assets"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1050", resp.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingFields() {
	payload, _ := json.Marshal(gin.H{"name": "No code or category"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_StillReferenced() {
	accountID := uuid.NewString()
	suite.mockSvc.On("DeleteAccount", mock.Anything, accountID).
		Return(apperrors.NewReferentialIntegrityError("account is referenced by journal lines", nil)).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeactivateAccount_NoContent() {
	accountID := uuid.NewString()
	suite.mockSvc.On("DeactivateAccount", mock.Anything, accountID).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/"+accountID+"/deactivate", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
