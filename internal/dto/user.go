package dto

import (
	"time"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
)

// RegisterRequest carries a registration candidate. The cnic and pkphone
// binding validators are registered at startup (see handlers.RegisterRoutes).
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Phone    string          `json:"phone" binding:"required,pkphone"`
	CNIC     string          `json:"cnic" binding:"required,cnic"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     domain.UserRole `json:"role" binding:"required"`
}

// LoginRequest carries login credentials. Identifier may be an email, phone,
// or cnic.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RefreshTokenRequest rotates an access token from a refresh token.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CNIC      string    `json:"cnic"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		CNIC:      user.CNIC,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
