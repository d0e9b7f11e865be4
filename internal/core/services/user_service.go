package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fieldkhata/khata_backend/internal/apperrors"
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	portsrepo "github.com/fieldkhata/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldkhata/khata_backend/internal/core/ports/services"
	"github.com/fieldkhata/khata_backend/internal/dto"
	"github.com/fieldkhata/khata_backend/internal/middleware"
	"github.com/fieldkhata/khata_backend/internal/utils"
)

// userService provides user registration and identity lookup.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user after validating identity fields and
// uniqueness rules. Users are immutable after creation except for the
// refresh-token session pointer.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	if !domain.ValidCNIC(req.CNIC) {
		return nil, fmt.Errorf("%w: cnic must be exactly 13 digits", apperrors.ErrValidation)
	}
	if !domain.ValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number", apperrors.ErrValidation)
	}

	// Only one COMPANY user may ever exist. The partial unique index on the
	// users table backs this check up under concurrency.
	if req.Role == domain.RoleCompany {
		exists, err := s.userRepo.CompanyUserExists(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing admin: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: a company admin is already registered", apperrors.ErrDuplicate)
		}
	}

	// Reject email / cnic collisions before attempting the insert so the
	// caller gets a precise error rather than a bare constraint violation.
	if existing, err := s.userRepo.FindUserByEmail(ctx, req.Email); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}
	if existing, err := s.userRepo.FindUserByCNIC(ctx, req.CNIC); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check cnic uniqueness: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: cnic already registered", apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:       newUserID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CNIC:         req.CNIC,
		PasswordHash: passwordHash,
		Role:         req.Role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID, // Self-registration
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by identifier: %w", err)
	}
	return user, nil
}

// AuthenticateUser verifies the identifier/password pair. A lookup miss and a
// password mismatch are reported distinctly so the auth handler can decide
// how much to reveal.
func (s *userService) AuthenticateUser(ctx context.Context, identifier, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Password mismatch on login", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *userService) AdminExists(ctx context.Context) (bool, error) {
	return s.userRepo.CompanyUserExists(ctx)
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}
