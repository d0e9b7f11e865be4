package services

import (
	"context"
	"time"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
)

// TokenSvcFacade handles JWT access tokens and persisted refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new refresh token for the given user.
	// The caller is responsible for persisting its hash via the user service.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken validates a refresh token string against
	// the user's persisted hash and returns the user on success.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}
