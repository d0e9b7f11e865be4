package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/core/services"
	"github.com/fieldkhata/khata_backend/internal/platform/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	cfg             *config.Config
	mockClientRepo  *MockClientRepository
	mockPaymentRepo *MockPaymentRepository
	service         portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{DashboardWindowDays: 30}
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewReportingService(suite.cfg, suite.mockClientRepo, suite.mockPaymentRepo)
}

// --- DashboardStats Tests ---
func (suite *ReportingServiceTestSuite) TestDashboardStats_ScopedToSalesman() {
	ctx := context.Background()
	salesmanID := uuid.NewString()

	suite.mockClientRepo.On("CountClients", ctx, salesmanID).Return(int64(12), nil).Once()
	suite.mockClientRepo.On("SumTotalPending", ctx, salesmanID).Return(decimal.NewFromInt(4500), nil).Once()
	suite.mockPaymentRepo.PaymentStatsSinceFn = func(_ context.Context, gotSalesmanID string, since time.Time) (int64, decimal.Decimal, error) {
		suite.Equal(salesmanID, gotSalesmanID)
		// The trailing window starts roughly WindowDays ago.
		suite.WithinDuration(time.Now().UTC().AddDate(0, 0, -30), since, time.Minute)
		return 7, decimal.NewFromInt(1900), nil
	}

	stats, err := suite.service.DashboardStats(ctx, salesmanID)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.Equal(int64(12), stats.ClientCount)
	suite.True(stats.TotalPending.Equal(decimal.NewFromInt(4500)))
	suite.Equal(int64(7), stats.PaymentCount)
	suite.True(stats.RecoveredTotal.Equal(decimal.NewFromInt(1900)))
	suite.Equal(30, stats.WindowDays)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDashboardStats_CompanyWide() {
	ctx := context.Background()

	// An empty salesman ID must flow through unchanged so the repos aggregate
	// the whole book.
	suite.mockClientRepo.On("CountClients", ctx, "").Return(int64(40), nil).Once()
	suite.mockClientRepo.On("SumTotalPending", ctx, "").Return(decimal.NewFromInt(99000), nil).Once()
	suite.mockPaymentRepo.On("PaymentStatsSince", ctx, "", mock.AnythingOfType("time.Time")).
		Return(int64(25), decimal.NewFromInt(31000), nil).Once()

	stats, err := suite.service.DashboardStats(ctx, "")

	suite.Require().NoError(err)
	suite.Equal(int64(40), stats.ClientCount)
	suite.Equal(int64(25), stats.PaymentCount)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

// --- ClientHistory Tests ---
func (suite *ReportingServiceTestSuite) TestClientHistory_NewestFirst() {
	ctx := context.Background()
	clientID := uuid.NewString()
	now := time.Now().UTC()

	// Two payments share a timestamp; the higher seq (later insert) leads.
	expected := []domain.Payment{
		{PaymentID: uuid.NewString(), Seq: 3, CreatedAt: now},
		{PaymentID: uuid.NewString(), Seq: 2, CreatedAt: now},
		{PaymentID: uuid.NewString(), Seq: 1, CreatedAt: now.Add(-time.Hour)},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByClientID", ctx, clientID).Return(expected, nil).Once()

	payments, err := suite.service.ClientHistory(ctx, clientID)

	suite.Require().NoError(err)
	suite.Equal(expected, payments)
	for i := 1; i < len(payments); i++ {
		prev, cur := payments[i-1], payments[i]
		suite.True(prev.CreatedAt.After(cur.CreatedAt) ||
			(prev.CreatedAt.Equal(cur.CreatedAt) && prev.Seq > cur.Seq))
	}
}

func (suite *ReportingServiceTestSuite) TestClientHistory_UnknownClient() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	payments, err := suite.service.ClientHistory(ctx, clientID)

	suite.Require().Error(err)
	suite.Nil(payments)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "FindPaymentsByClientID", mock.Anything, mock.Anything)
}

// --- ResolveClientForUser Tests ---
func (suite *ReportingServiceTestSuite) TestResolveClientForUser_CNICWins() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), CNIC: "3520212345671", Phone: "03001234567"}
	byCNIC := &domain.Client{ClientID: uuid.NewString(), CNIC: user.CNIC}

	suite.mockClientRepo.On("FindClientByCNIC", ctx, user.CNIC).Return(byCNIC, nil).Once()

	client, err := suite.service.ResolveClientForUser(ctx, user)

	suite.Require().NoError(err)
	suite.Equal(byCNIC, client)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByPhone", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestResolveClientForUser_PhoneFallback() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), CNIC: "3520212345671", Phone: "03001234567"}
	byPhone := &domain.Client{ClientID: uuid.NewString(), Phone: user.Phone}

	suite.mockClientRepo.On("FindClientByCNIC", ctx, user.CNIC).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("FindClientByPhone", ctx, user.Phone).Return(byPhone, nil).Once()

	client, err := suite.service.ResolveClientForUser(ctx, user)

	suite.Require().NoError(err)
	suite.Equal(byPhone, client)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestResolveClientForUser_NotLinked() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), CNIC: "3520212345671", Phone: "03001234567"}

	suite.mockClientRepo.On("FindClientByCNIC", ctx, user.CNIC).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("FindClientByPhone", ctx, user.Phone).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.ResolveClientForUser(ctx, user)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestResolveClientForUser_NoIdentifiers() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	client, err := suite.service.ResolveClientForUser(ctx, user)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByCNIC", mock.Anything, mock.Anything)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByPhone", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
