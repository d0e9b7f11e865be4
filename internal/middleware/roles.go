package middleware

import (
	"net/http"

	"github.com/fieldkhata/khata_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the given roles. AuthMiddleware must run
// first so the role is present in the context.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	allowed := make(map[domain.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			GetLoggerFromCtx(c.Request.Context()).Error("Role missing from context in RequireRole")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if _, ok := allowed[role]; !ok {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted for route", "role", string(role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
