package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizledger/backoffice/internal/apperrors"
	"github.com/bizledger/backoffice/internal/core/domain"
	portssvc "github.com/bizledger/backoffice/internal/core/ports/services"
	"github.com/bizledger/backoffice/internal/dto"
	"github.com/bizledger/backoffice/internal/handlers"
	"github.com/bizledger/backoffice/internal/platform/config"
)

// --- Mock LedgerService ---

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntryLines(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// newTestRouter builds a production-mode router (no swagger) around the
// given services.
func newTestRouter(services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, services)
	return r
}

// --- Test Suite Setup ---

type LedgerHandlerTestSuite struct {
	suite.Suite
	mockSvc *MockLedgerService
	router  *gin.Engine
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	suite.mockSvc = new(MockLedgerService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{Ledger: suite.mockSvc})
}

func (suite *LedgerHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestCreateEntry_Created() {
	entryID := uuid.NewString()
	returned := &domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "Paid March office rent",
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "6100", AccountName: "Rent Expense", Debit: decimal.NewFromInt(1200)},
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "1010", AccountName: "Cash", Credit: decimal.NewFromInt(1200)},
		},
	}
	suite.mockSvc.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateEntryRequest")).Return(returned, nil).Once()

	w := suite.postJSON("/api/v1/entries", gin.H{
		"entryDate":   "2024-03-01",
		"description": "Paid March office rent",
		"lines": []gin.H{
			{"accountID": uuid.NewString(), "debit": "1200"},
			{"accountID": uuid.NewString(), "credit": "1200"},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entryID, resp.EntryID)
	suite.Equal("2024-03-01", resp.EntryDate)
	suite.Require().Len(resp.Lines, 2)
	suite.Equal("6100", resp.Lines[0].AccountCode)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_ValidationViolations() {
	violations := []string{
		"entry date is required",
		"description is required",
		"at least one line is required",
	}
	suite.mockSvc.On("CreateEntry", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError(violations)).Once()

	w := suite.postJSON("/api/v1/entries", gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp dto.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("validation failed", resp.Error)
	suite.Equal(violations, resp.Violations)
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_MalformedJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_UnknownAccount() {
	suite.mockSvc.On("CreateEntry", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewNotFoundError("a line references a non-existent account")).Once()

	w := suite.postJSON("/api/v1/entries", gin.H{
		"entryDate":   "2024-03-01",
		"description": "Entry with bad account",
		"lines": []gin.H{
			{"accountID": uuid.NewString(), "debit": "10"},
			{"accountID": uuid.NewString(), "credit": "10"},
		},
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_Timeout() {
	suite.mockSvc.On("CreateEntry", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewTimeoutError("operation exceeded its deadline", context.DeadlineExceeded)).Once()

	w := suite.postJSON("/api/v1/entries", gin.H{
		"entryDate":   "2024-03-01",
		"description": "Slow entry",
		"lines": []gin.H{
			{"accountID": uuid.NewString(), "debit": "10"},
			{"accountID": uuid.NewString(), "credit": "10"},
		},
	})

	suite.Equal(http.StatusGatewayTimeout, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestListEntries_PassesLimit() {
	suite.mockSvc.On("ListEntries", mock.Anything, 5).Return([]domain.JournalEntry{
		{EntryID: uuid.NewString(), EntryDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Description: "Later entry"},
		{EntryID: uuid.NewString(), EntryDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Description: "Earlier entry"},
	}, nil).Once()

	w := suite.get("/api/v1/entries?limit=5")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 2)
	suite.Equal("2024-03-02", resp.Entries[0].EntryDate)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListEntries_InvalidLimit() {
	w := suite.get("/api/v1/entries?limit=abc")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestListEntryLines_NotFound() {
	entryID := uuid.NewString()
	suite.mockSvc.On("ListEntryLines", mock.Anything, entryID).
		Return(nil, apperrors.NewNotFoundError("journal entry not found")).Once()

	w := suite.get("/api/v1/entries/" + entryID + "/lines")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestListEntryLines_Success() {
	entryID := uuid.NewString()
	suite.mockSvc.On("ListEntryLines", mock.Anything, entryID).Return([]domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "1010", AccountName: "Cash", Debit: decimal.NewFromInt(250)},
	}, nil).Once()

	w := suite.get("/api/v1/entries/" + entryID + "/lines")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListEntryLinesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Lines, 1)
	suite.Equal("Cash", resp.Lines[0].AccountName)
}

// --- Run Test Suite ---

func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
