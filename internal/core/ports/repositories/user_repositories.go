package repositories

import (
	"context"
	"time"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByCNIC retrieves a user by CNIC.
	FindUserByCNIC(ctx context.Context, cnic string) (*domain.User, error)

	// FindUserByIdentifier retrieves a user whose email, phone, or cnic
	// matches the identifier. Used for login.
	FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error)

	// CompanyUserExists reports whether a COMPANY-role user is registered.
	CompanyUserExists(ctx context.Context) (bool, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hashed refresh token for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the persisted session reference for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
