package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/core/services"
	"github.com/fieldkhata/khata_backend/internal/dto"
	"github.com/fieldkhata/khata_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository (based on UserService usage) ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn         func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	FindUserByCNICFn       func(ctx context.Context, cnic string) (*domain.User, error)
	FindUserByIdentifierFn func(ctx context.Context, identifier string) (*domain.User, error)
	CompanyUserExistsFn    func(ctx context.Context) (bool, error)
	SaveUserFn             func(ctx context.Context, user domain.User) error
	UpdateRefreshTokenFn   func(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshTokenFn    func(ctx context.Context, userID string) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByCNIC(ctx context.Context, cnic string) (*domain.User, error) {
	if m.FindUserByCNICFn != nil {
		return m.FindUserByCNICFn(ctx, cnic)
	}
	args := m.Called(ctx, cnic)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if m.FindUserByIdentifierFn != nil {
		return m.FindUserByIdentifierFn(ctx, identifier)
	}
	args := m.Called(ctx, identifier)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) CompanyUserExists(ctx context.Context) (bool, error) {
	if m.CompanyUserExistsFn != nil {
		return m.CompanyUserExistsFn(ctx)
	}
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	}
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	if m.ClearRefreshTokenFn != nil {
		return m.ClearRefreshTokenFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func validRegisterRequest(role domain.UserRole) dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "Ahmed Khan",
		Email:    "ahmed@example.com",
		Phone:    "03001234567",
		CNIC:     "3520212345671",
		Password: "password123",
		Role:     role,
	}
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := validRegisterRequest(domain.RoleSalesman)

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByCNIC", ctx, req.CNIC).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == req.Email &&
			user.Role == domain.RoleSalesman &&
			user.PasswordHash != "" &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdUser)
	suite.Equal(req.Name, createdUser.Name)
	suite.NotEmpty(createdUser.UserID)
	suite.Equal(createdUser.UserID, createdUser.CreatedBy) // Self-registration
	suite.True(utils.CheckPasswordHash(req.Password, createdUser.PasswordHash))

	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CompanyUserExists", mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_InvalidCNIC() {
	ctx := context.Background()
	req := validRegisterRequest(domain.RoleSalesman)
	req.CNIC = "12345" // Too short

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_InvalidRole() {
	ctx := context.Background()
	req := validRegisterRequest(domain.UserRole("MANAGER"))

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestCreateUser_SecondCompanyAdminRejected() {
	ctx := context.Background()
	req := validRegisterRequest(domain.RoleCompany)

	suite.mockUserRepo.On("CompanyUserExists", ctx).Return(true, nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_FirstCompanyAdminAllowed() {
	ctx := context.Background()
	req := validRegisterRequest(domain.RoleCompany)

	suite.mockUserRepo.On("CompanyUserExists", ctx).Return(false, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByCNIC", ctx, req.CNIC).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdUser)
	suite.Equal(domain.RoleCompany, createdUser.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := validRegisterRequest(domain.RoleSalesman)
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateCNIC() {
	ctx := context.Background()
	req := validRegisterRequest(domain.RoleSalesman)
	existing := &domain.User{UserID: uuid.NewString(), CNIC: req.CNIC}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByCNIC", ctx, req.CNIC).Return(existing, nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	req := validRegisterRequest(domain.RoleSalesman)
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByCNIC", ctx, req.CNIC).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(expectedErr).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "ahmed@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByIdentifier", ctx, user.Email).Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authed.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownIdentifier() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByIdentifier", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "ahmed@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByIdentifier", ctx, user.Email).Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, user.Email, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedUser := &domain.User{UserID: userID, Name: "Found User"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(expectedUser, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expectedUser, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AdminExists Tests ---
func (suite *UserServiceTestSuite) TestAdminExists() {
	ctx := context.Background()

	suite.mockUserRepo.On("CompanyUserExists", ctx).Return(true, nil).Once()

	exists, err := suite.service.AdminExists(ctx)

	suite.Require().NoError(err)
	suite.True(exists)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Refresh token delegation ---
func (suite *UserServiceTestSuite) TestClearRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("ClearRefreshToken", ctx, userID).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
