package middleware

import (
	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and userRoleKey hold the authenticated user's identity in the
// request context, set by AuthMiddleware.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	v := c.Request.Context().Value(userIDKey)
	if v == nil {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin
// context.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	v := c.Request.Context().Value(userRoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(domain.UserRole)
	return role, ok
}
