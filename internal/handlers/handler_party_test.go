package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mandikhata/trade_ledger_app/internal/apperrors"
	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
	"github.com/mandikhata/trade_ledger_app/internal/handlers"
	"github.com/mandikhata/trade_ledger_app/internal/middleware"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

func (m *MockPartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	args := m.Called(ctx, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) ListPartiesWithBalances(ctx context.Context, partyType domain.PartyType) ([]domain.PartyBalance, error) {
	args := m.Called(ctx, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartyBalance), args.Error(1)
}

func (m *MockPartyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) DeactivateParty(ctx context.Context, partyID string, updaterUserID string) error {
	args := m.Called(ctx, partyID, updaterUserID)
	return args.Error(0)
}

func (m *MockPartyService) GetPartyBalance(ctx context.Context, partyID string, asOf *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, partyID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoicesByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, partyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, partyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock AdjustmentService ---
type MockAdjustmentService struct {
	mock.Mock
}

var _ portssvc.AdjustmentSvcFacade = (*MockAdjustmentService)(nil)

func (m *MockAdjustmentService) CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, creatorUserID string) (*domain.Adjustment, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Adjustment), args.Error(1)
}

func (m *MockAdjustmentService) ListAdjustmentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Adjustment, error) {
	args := m.Called(ctx, partyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Adjustment), args.Error(1)
}

func (m *MockAdjustmentService) DeleteAdjustment(ctx context.Context, adjustmentID string) error {
	args := m.Called(ctx, adjustmentID)
	return args.Error(0)
}

// --- Test Suite ---
type PartyHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockPartyService      *MockPartyService
	mockInvoiceService    *MockInvoiceService
	mockPaymentService    *MockPaymentService
	mockAdjustmentService *MockAdjustmentService
	jwtSecret             string
}

// generateTestToken creates a bearer token accepted by the auth middleware.
func (suite *PartyHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "trade-ledger-test",
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

func (suite *PartyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockPartyService = new(MockPartyService)
	suite.mockInvoiceService = new(MockInvoiceService)
	suite.mockPaymentService = new(MockPaymentService)
	suite.mockAdjustmentService = new(MockAdjustmentService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPartyRoutes(v1, suite.mockPartyService, suite.mockInvoiceService, suite.mockPaymentService, suite.mockAdjustmentService)
}

func (suite *PartyHandlerTestSuite) performRequest(method, path, token string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PartyHandlerTestSuite) TestListParties_MissingAuth() {
	w := suite.performRequest(http.MethodGet, "/api/v1/parties?type=CUSTOMER", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPartyService.AssertNotCalled(suite.T(), "ListParties", mock.Anything, mock.Anything)
}

func (suite *PartyHandlerTestSuite) TestListParties_MissingType() {
	token := suite.generateTestToken(uuid.NewString())

	w := suite.performRequest(http.MethodGet, "/api/v1/parties", token, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartyService.AssertNotCalled(suite.T(), "ListParties", mock.Anything, mock.Anything)
}

func (suite *PartyHandlerTestSuite) TestListParties_Success() {
	token := suite.generateTestToken(uuid.NewString())
	parties := []domain.Party{
		{PartyID: uuid.NewString(), PartyType: domain.Customer, Name: "Sharma Traders"},
		{PartyID: uuid.NewString(), PartyType: domain.Customer, Name: "Verma & Sons"},
	}

	suite.mockPartyService.On("ListParties", mock.Anything, domain.Customer).Return(parties, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/parties?type=CUSTOMER", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var got []dto.PartyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got, 2)
	suite.Equal("Sharma Traders", got[0].Name)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestCreateParty_PassesAuthenticatedUser() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)
	req := dto.CreatePartyRequest{
		PartyType:      domain.Vendor,
		Name:           "Fresh Farms",
		OpeningBalance: decimal.NewFromInt(250),
	}
	body, err := json.Marshal(req)
	suite.Require().NoError(err)

	created := &domain.Party{PartyID: uuid.NewString(), PartyType: domain.Vendor, Name: "Fresh Farms"}
	suite.mockPartyService.On("CreateParty", mock.Anything, mock.MatchedBy(func(r dto.CreatePartyRequest) bool {
		return r.Name == req.Name && r.PartyType == domain.Vendor
	}), userID).Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/parties", token, body)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.PartyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(created.PartyID, got.PartyID)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestCreateParty_InvalidBody() {
	token := suite.generateTestToken(uuid.NewString())
	// missing required name and an invalid party type
	body := []byte(`{"partyType":"SUPPLIER"}`)

	w := suite.performRequest(http.MethodPost, "/api/v1/parties", token, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartyService.AssertNotCalled(suite.T(), "CreateParty", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PartyHandlerTestSuite) TestGetParty_NotFound() {
	token := suite.generateTestToken(uuid.NewString())
	partyID := uuid.NewString()

	suite.mockPartyService.On("GetPartyByID", mock.Anything, partyID).
		Return(nil, fmt.Errorf("failed to get party: %w", apperrors.ErrNotFound)).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/parties/"+partyID, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestGetPartyBalance_WithCutoff() {
	token := suite.generateTestToken(uuid.NewString())
	partyID := uuid.NewString()
	cutoff := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	suite.mockPartyService.On("GetPartyBalance", mock.Anything, partyID, &cutoff).
		Return(decimal.NewFromInt(550), nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/parties/"+partyID+"/balance?asOf=2024-02-10", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var got map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.JSONEq(`"550"`, string(got["balance"]))
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestGetPartyBalance_InvalidCutoff() {
	token := suite.generateTestToken(uuid.NewString())
	partyID := uuid.NewString()

	w := suite.performRequest(http.MethodGet, "/api/v1/parties/"+partyID+"/balance?asOf=10-02-2024", token, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartyService.AssertNotCalled(suite.T(), "GetPartyBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PartyHandlerTestSuite) TestDeactivateParty_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)
	partyID := uuid.NewString()

	suite.mockPartyService.On("DeactivateParty", mock.Anything, partyID, userID).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/parties/"+partyID, token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func TestPartyHandler(t *testing.T) {
	suite.Run(t, new(PartyHandlerTestSuite))
}
