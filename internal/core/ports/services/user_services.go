package services

import (
	"context"
	"time"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/fieldkhata/khata_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByIdentifier retrieves a user by email, phone, or cnic.
	FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error)

	// AdminExists reports whether a COMPANY-role user is registered. Used to
	// disable further admin registration.
	AdminExists(ctx context.Context) (bool, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a new user. Fails with apperrors.ErrDuplicate on
	// email/cnic collision or a second COMPANY registration.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user by identifier and password.
	AuthenticateUser(ctx context.Context, identifier, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
