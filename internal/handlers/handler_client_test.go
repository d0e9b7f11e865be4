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

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/dto"
	"github.com/fieldkhata/khata_backend/internal/handlers"
	"github.com/fieldkhata/khata_backend/internal/middleware"
	"github.com/fieldkhata/khata_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateClient(ctx context.Context, salesmanID string, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, salesmanID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockLedgerService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockLedgerService) ListClients(ctx context.Context, salesmanID string, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, salesmanID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockLedgerService) RecordPayment(ctx context.Context, salesmanID string, req dto.RecordPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, salesmanID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockLedgerService) ListPayments(ctx context.Context, clientID string) ([]domain.Payment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type ClientHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a JWT carrying the given role for testing.
func (suite *ClientHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "khata-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterClientRoutes(v1, suite.mockLedgerService)
	handlers.RegisterPaymentRoutes(v1, suite.mockLedgerService)
}

func (suite *ClientHandlerTestSuite) doJSON(method, url, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ClientHandlerTestSuite) TestRecordPayment_Success() {
	salesmanID := uuid.NewString()
	clientID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, SalesmanID: salesmanID}

	reqBody := dto.RecordPaymentRequest{
		ClientID:    clientID,
		TotalBill:   decimal.NewFromInt(500),
		PaidAmount:  decimal.NewFromInt(200),
		PaymentType: "CASH",
	}
	stored := &domain.Payment{
		PaymentID:       uuid.NewString(),
		Seq:             1,
		ClientID:        clientID,
		SalesmanID:      salesmanID,
		TotalBill:       reqBody.TotalBill,
		PaidAmount:      reqBody.PaidAmount,
		RemainingAmount: decimal.NewFromInt(300),
		PaymentType:     domain.PaymentCash,
		CreatedAt:       time.Now().UTC(),
	}

	suite.mockLedgerService.On("GetClient", mock.Anything, clientID).Return(client, nil).Once()
	suite.mockLedgerService.On("RecordPayment", mock.Anything, salesmanID, mock.MatchedBy(func(r dto.RecordPaymentRequest) bool {
		return r.ClientID == clientID && r.TotalBill.Equal(decimal.NewFromInt(500))
	})).Return(stored, nil).Once()

	token := suite.generateTestToken(salesmanID, domain.RoleSalesman)
	w := suite.doJSON(http.MethodPost, "/api/v1/payments", token, reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(stored.PaymentID, resp.PaymentID)
	suite.True(resp.RemainingAmount.Equal(decimal.NewFromInt(300)))

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestRecordPayment_OtherSalesmansClient() {
	salesmanID := uuid.NewString()
	clientID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, SalesmanID: uuid.NewString()} // Different owner

	reqBody := dto.RecordPaymentRequest{
		ClientID:    clientID,
		TotalBill:   decimal.NewFromInt(100),
		PaidAmount:  decimal.NewFromInt(100),
		PaymentType: "CASH",
	}

	suite.mockLedgerService.On("GetClient", mock.Anything, clientID).Return(client, nil).Once()

	token := suite.generateTestToken(salesmanID, domain.RoleSalesman)
	w := suite.doJSON(http.MethodPost, "/api/v1/payments", token, reqBody)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientHandlerTestSuite) TestRecordPayment_ClientRoleForbidden() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleClient)
	w := suite.doJSON(http.MethodPost, "/api/v1/payments", token, dto.RecordPaymentRequest{
		ClientID:    uuid.NewString(),
		TotalBill:   decimal.NewFromInt(100),
		PaidAmount:  decimal.NewFromInt(100),
		PaymentType: "CASH",
	})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetClient", mock.Anything, mock.Anything)
}

func (suite *ClientHandlerTestSuite) TestRecordPayment_NoToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payments", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ClientHandlerTestSuite) TestListClients_ScopedToSalesman() {
	salesmanID := uuid.NewString()
	expected := []domain.Client{
		{ClientID: uuid.NewString(), SalesmanID: salesmanID, ShopName: "Madina Store"},
		{ClientID: uuid.NewString(), SalesmanID: salesmanID, ShopName: "Bismillah Traders"},
	}

	suite.mockLedgerService.On("ListClients", mock.Anything, salesmanID, 50, 0).Return(expected, nil).Once()

	token := suite.generateTestToken(salesmanID, domain.RoleSalesman)
	w := suite.doJSON(http.MethodGet, "/api/v1/clients", token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListClientsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Clients, 2)
	suite.Equal(expected[0].ClientID, resp.Clients[0].ClientID)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestListClients_CompanySeesWholeBook() {
	adminID := uuid.NewString()

	// The company admin's scope is the empty string: all salesmen.
	suite.mockLedgerService.On("ListClients", mock.Anything, "", 50, 0).Return([]domain.Client{}, nil).Once()

	token := suite.generateTestToken(adminID, domain.RoleCompany)
	w := suite.doJSON(http.MethodGet, "/api/v1/clients", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestGetClient_NotFound() {
	clientID := uuid.NewString()

	suite.mockLedgerService.On("GetClient", mock.Anything, clientID).Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleSalesman)
	url := fmt.Sprintf("/api/v1/clients/%s", clientID)
	w := suite.doJSON(http.MethodGet, url, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestCreateClient_Success() {
	salesmanID := uuid.NewString()
	reqBody := dto.CreateClientRequest{ShopName: "Madina Store", Phone: "03001234567"}
	created := &domain.Client{
		ClientID:     uuid.NewString(),
		SalesmanID:   salesmanID,
		ShopName:     reqBody.ShopName,
		Phone:        reqBody.Phone,
		TotalPending: decimal.Zero,
	}

	suite.mockLedgerService.On("CreateClient", mock.Anything, salesmanID, mock.MatchedBy(func(r dto.CreateClientRequest) bool {
		return r.ShopName == reqBody.ShopName
	})).Return(created, nil).Once()

	token := suite.generateTestToken(salesmanID, domain.RoleSalesman)
	w := suite.doJSON(http.MethodPost, "/api/v1/clients", token, reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ClientResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ClientID, resp.ClientID)
	suite.True(resp.TotalPending.IsZero())

	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestClientHandler(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
